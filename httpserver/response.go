package httpserver

import (
	"moviereview/movie"
	"moviereview/review"
)

const movieDeletedMessage = "Movie successfully deleted"

type ReviewResponse struct {
	ID         int64   `json:"id"`
	StarRating float64 `json:"star_rating"`
	ReviewText *string `json:"review_text"`
	MovieID    int64   `json:"movie_id"`
}

type MovieResponse struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Genre       string           `json:"genre"`
	MPAARating  *string          `json:"mpaa_rating"`
	PosterImage *string          `json:"poster_image"`
	AllReviews  []ReviewResponse `json:"all_reviews"`
}

func newReviewResponse(r review.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		StarRating: r.StarRating,
		ReviewText: r.ReviewText,
		MovieID:    r.MovieID,
	}
}

// newMovieResponse never leaves all_reviews null.
func newMovieResponse(m movie.Movie) MovieResponse {
	reviews := make([]ReviewResponse, len(m.Reviews))
	for i, r := range m.Reviews {
		reviews[i] = newReviewResponse(r)
	}
	return MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		MPAARating:  m.MPAARating,
		PosterImage: m.PosterImage,
		AllReviews:  reviews,
	}
}

func newMovieListResponse(ms []movie.Movie) []MovieResponse {
	list := make([]MovieResponse, len(ms))
	for i, m := range ms {
		list[i] = newMovieResponse(m)
	}
	return list
}
