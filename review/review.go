package review

import (
	"moviereview/errs"
	"unicode/utf8"
)

// MaxTextLength is the longest review_text accepted, counted in characters.
const MaxTextLength = 280

var (
	ErrTextTooLong  = errs.Errorf(errs.EINVALID, "Error: 'review_text' must be at most %d characters", MaxTextLength)
	ErrUnknownMovie = errs.Errorf(errs.EINVALID, "Error: movie_id does not reference an existing movie")
)

// Review is a rating left on a movie. It always belongs to exactly one movie.
type Review struct {
	ID         int64
	StarRating float64
	ReviewText *string
	MovieID    int64
}

func (r Review) Validate() error {
	if r.ReviewText != nil && utf8.RuneCountInString(*r.ReviewText) > MaxTextLength {
		return ErrTextTooLong
	}

	return nil
}
