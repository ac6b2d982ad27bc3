package gormdb

import (
	"context"
	"errors"
	"moviereview/movie"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieRepository implements movie.Repository interface
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// CreateMovie inserts a new movie. A taken title yields movie.ErrTitleTaken.
func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	model := newMovieModel(m)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return movie.Movie{}, translateMovieError(err)
	}
	return model.toMovie(), nil
}

// CreateMovieIfAbsent inserts m in a single statement that does nothing when
// the title is already stored.
func (r *MovieRepository) CreateMovieIfAbsent(ctx context.Context, m movie.Movie) (movie.Movie, bool, error) {
	model := newMovieModel(m)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "title"}},
			DoNothing: true,
		}).
		Create(&model)
	if result.Error != nil {
		return movie.Movie{}, false, translateMovieError(result.Error)
	}
	if result.RowsAffected == 0 {
		return movie.Movie{}, false, nil
	}
	return model.toMovie(), true, nil
}

func (r *MovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	var models []MovieModel
	if err := r.withReviews(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = model.toMovie()
	}
	return movies, nil
}

func (r *MovieRepository) MovieByID(ctx context.Context, id int64) (movie.Movie, error) {
	var model MovieModel
	if err := r.withReviews(ctx).First(&model, id).Error; err != nil {
		return movie.Movie{}, translateMovieError(err)
	}
	return model.toMovie(), nil
}

// UpdateMovie applies the non-nil fields of u and returns the stored movie.
func (r *MovieRepository) UpdateMovie(ctx context.Context, id int64, u movie.Update) (movie.Movie, error) {
	var model MovieModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model, id).Error; err != nil {
			return err
		}
		if u.IsEmpty() {
			return nil
		}
		return tx.Model(&model).Updates(updateColumns(u)).Error
	})
	if err != nil {
		return movie.Movie{}, translateMovieError(err)
	}
	return r.MovieByID(ctx, id)
}

// DeleteMovie removes the movie and all of its reviews.
func (r *MovieRepository) DeleteMovie(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", id).Delete(&ReviewModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&MovieModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return movie.ErrMovieNotFound
		}
		return nil
	})
}

func (r *MovieRepository) withReviews(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Reviews", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
}

func updateColumns(u movie.Update) map[string]interface{} {
	columns := make(map[string]interface{}, 4)
	if u.Title != nil {
		columns["title"] = *u.Title
	}
	if u.Genre != nil {
		columns["genre"] = *u.Genre
	}
	if u.MPAARating != nil {
		columns["mpaa_rating"] = *u.MPAARating
	}
	if u.PosterImage != nil {
		columns["poster_image"] = *u.PosterImage
	}
	return columns
}

func translateMovieError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return movie.ErrMovieNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return movie.ErrTitleTaken
	}
	return err
}
