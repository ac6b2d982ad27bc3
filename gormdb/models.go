package gormdb

import (
	"moviereview/movie"
	"moviereview/review"
)

// MovieModel represents the database model for movies
type MovieModel struct {
	ID          int64         `gorm:"primaryKey"`
	Title       string        `gorm:"not null;uniqueIndex"`
	Genre       string        `gorm:"not null"`
	MPAARating  *string       `gorm:"column:mpaa_rating"`
	PosterImage *string       `gorm:"column:poster_image"`
	Reviews     []ReviewModel `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movie"
}

// ReviewModel represents the database model for reviews
type ReviewModel struct {
	ID         int64   `gorm:"primaryKey"`
	StarRating float64 `gorm:"not null"`
	ReviewText *string `gorm:"size:280"`
	MovieID    int64   `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (ReviewModel) TableName() string {
	return "review"
}

func newMovieModel(m movie.Movie) MovieModel {
	return MovieModel{
		Title:       m.Title,
		Genre:       m.Genre,
		MPAARating:  m.MPAARating,
		PosterImage: m.PosterImage,
	}
}

func (model MovieModel) toMovie() movie.Movie {
	reviews := make([]review.Review, len(model.Reviews))
	for i, r := range model.Reviews {
		reviews[i] = r.toReview()
	}
	return movie.Movie{
		ID:          model.ID,
		Title:       model.Title,
		Genre:       model.Genre,
		MPAARating:  model.MPAARating,
		PosterImage: model.PosterImage,
		Reviews:     reviews,
	}
}

func newReviewModel(r review.Review) ReviewModel {
	return ReviewModel{
		StarRating: r.StarRating,
		ReviewText: r.ReviewText,
		MovieID:    r.MovieID,
	}
}

func (model ReviewModel) toReview() review.Review {
	return review.Review{
		ID:         model.ID,
		StarRating: model.StarRating,
		ReviewText: model.ReviewText,
		MovieID:    model.MovieID,
	}
}
