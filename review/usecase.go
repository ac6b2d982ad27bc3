package review

import "context"

type Service interface {
	AddReview(ctx context.Context, r Review) (Review, error)
}

type Repository interface {
	CreateReview(ctx context.Context, r Review) (Review, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

// AddReview stores a review. The movie reference is checked by the store,
// which reports ErrUnknownMovie when it does not exist.
func (uc *Usecase) AddReview(ctx context.Context, r Review) (Review, error) {
	if err := r.Validate(); err != nil {
		return Review{}, err
	}
	return uc.r.CreateReview(ctx, r)
}
