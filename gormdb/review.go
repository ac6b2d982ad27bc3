package gormdb

import (
	"context"
	"errors"
	"moviereview/review"

	"gorm.io/gorm"
)

// ReviewRepository implements review.Repository interface
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// CreateReview inserts a review. The movie reference is enforced by the
// foreign key and reported as review.ErrUnknownMovie.
func (r *ReviewRepository) CreateReview(ctx context.Context, rv review.Review) (review.Review, error) {
	model := newReviewModel(rv)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return review.Review{}, review.ErrUnknownMovie
		}
		return review.Review{}, err
	}
	return model.toReview(), nil
}
