package movie

import (
	"context"
	"errors"
)

type Service interface {
	AddMovie(ctx context.Context, m Movie) (Movie, error)
	AddMovies(ctx context.Context, ms []Movie) ([]Movie, error)
	ListMovies(ctx context.Context) ([]Movie, error)
	GetMovie(ctx context.Context, id int64) (*Movie, error)
	UpdateMovie(ctx context.Context, id int64, u Update) (Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

type Repository interface {
	CreateMovie(ctx context.Context, m Movie) (Movie, error)
	// CreateMovieIfAbsent inserts m unless a movie with the same title
	// exists. The boolean reports whether a row was inserted.
	CreateMovieIfAbsent(ctx context.Context, m Movie) (Movie, bool, error)
	AllMovies(ctx context.Context) ([]Movie, error)
	MovieByID(ctx context.Context, id int64) (Movie, error)
	UpdateMovie(ctx context.Context, id int64, u Update) (Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) AddMovie(ctx context.Context, m Movie) (Movie, error) {
	return uc.r.CreateMovie(ctx, m)
}

// AddMovies inserts every movie whose title is not stored yet and returns
// only the inserted ones. Duplicates, including duplicates within ms, are
// skipped without error.
func (uc *Usecase) AddMovies(ctx context.Context, ms []Movie) ([]Movie, error) {
	created := make([]Movie, 0, len(ms))
	for _, m := range ms {
		stored, ok, err := uc.r.CreateMovieIfAbsent(ctx, m)
		if err != nil {
			return nil, err
		}
		if ok {
			created = append(created, stored)
		}
	}
	return created, nil
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	return uc.r.AllMovies(ctx)
}

// GetMovie returns nil when no movie has the given id.
func (uc *Usecase) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	m, err := uc.r.MovieByID(ctx, id)
	if errors.Is(err, ErrMovieNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (uc *Usecase) UpdateMovie(ctx context.Context, id int64, u Update) (Movie, error) {
	return uc.r.UpdateMovie(ctx, id, u)
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id int64) error {
	return uc.r.DeleteMovie(ctx, id)
}
