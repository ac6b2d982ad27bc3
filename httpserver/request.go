package httpserver

import (
	"moviereview/movie"
	"moviereview/review"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

var errNotJSON = echo.NewHTTPError(http.StatusUnsupportedMediaType, "Error: Data must be sent as JSON")

// AddMovieRequest uses pointers so that an absent key is told apart from an
// empty value.
type AddMovieRequest struct {
	Title       *string `json:"title" validate:"required"`
	Genre       *string `json:"genre" validate:"required"`
	MPAARating  *string `json:"mpaa_rating"`
	PosterImage *string `json:"poster_image"`
}

func (r AddMovieRequest) ToMovie() movie.Movie {
	return movie.Movie{
		Title:       deref(r.Title),
		Genre:       deref(r.Genre),
		MPAARating:  r.MPAARating,
		PosterImage: r.PosterImage,
	}
}

type UpdateMovieRequest struct {
	Title       *string `json:"title"`
	Genre       *string `json:"genre"`
	MPAARating  *string `json:"mpaa_rating"`
	PosterImage *string `json:"poster_image"`
}

func (r UpdateMovieRequest) ToUpdate() movie.Update {
	return movie.Update{
		Title:       r.Title,
		Genre:       r.Genre,
		MPAARating:  r.MPAARating,
		PosterImage: r.PosterImage,
	}
}

type AddReviewRequest struct {
	StarRating *float64 `json:"star_rating" validate:"required"`
	ReviewText *string  `json:"review_text" validate:"omitempty,max=280"`
	MovieID    *int64   `json:"movie_id" validate:"required"`
}

func (r AddReviewRequest) ToReview() review.Review {
	rv := review.Review{ReviewText: r.ReviewText}
	if r.StarRating != nil {
		rv.StarRating = *r.StarRating
	}
	if r.MovieID != nil {
		rv.MovieID = *r.MovieID
	}
	return rv
}

// requireJSON rejects bodies that are not declared as JSON.
func requireJSON(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctype := c.Request().Header.Get(echo.HeaderContentType)
		if !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
			return errNotJSON
		}
		return next(c)
	}
}

// bindJSON decodes the request body only, leaving path and query params out.
func bindJSON(c echo.Context, i interface{}) error {
	return new(echo.DefaultBinder).BindBody(c, i)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
