package movie

import (
	"moviereview/errs"
	"moviereview/review"
)

var (
	ErrMovieNotFound = errs.Errorf(errs.ENOTFOUND, "Error: movie not found")
	ErrTitleTaken    = errs.Errorf(errs.ECONFLICT, "Error: a movie with that title already exists")
)

// Movie owns its reviews: deleting a movie deletes every review of it.
type Movie struct {
	ID          int64
	Title       string
	Genre       string
	MPAARating  *string
	PosterImage *string
	Reviews     []review.Review
}

// Update carries the fields of a partial movie update. Nil fields are left
// unchanged.
type Update struct {
	Title       *string
	Genre       *string
	MPAARating  *string
	PosterImage *string
}

func (u Update) IsEmpty() bool {
	return u.Title == nil && u.Genre == nil && u.MPAARating == nil && u.PosterImage == nil
}
