package gormdb_test

import (
	"moviereview/gormdb"
	"moviereview/movie"
	"moviereview/sqlite"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateTestDatabase opens a private in-memory sqlite database with the
// schema applied.
func CreateTestDatabase(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := sqlite.NewConnection(sqlite.Options{
		Path:   "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		Logger: zap.NewNop(),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func mustCreateMovie(t testing.TB, db *gorm.DB, title, genre string) gormdb.MovieModel {
	t.Helper()
	model := gormdb.MovieModel{Title: title, Genre: genre}
	require.NoError(t, db.Create(&model).Error)
	return model
}

func mustCreateReview(t testing.TB, db *gorm.DB, movieID int64, stars float64) gormdb.ReviewModel {
	t.Helper()
	model := gormdb.ReviewModel{MovieID: movieID, StarRating: stars}
	require.NoError(t, db.Create(&model).Error)
	return model
}

func mustCloseDBConnection(db *gorm.DB) {
	sqlDB, _ := db.DB()
	sqlDB.Close()
}

func countReviews(t testing.TB, db *gorm.DB, movieID int64) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&gormdb.ReviewModel{}).Where("movie_id = ?", movieID).Count(&n).Error)
	return n
}

func assertMovieTitles(t testing.TB, movies []movie.Movie, titles ...string) {
	t.Helper()
	got := make([]string, len(movies))
	for i, m := range movies {
		got[i] = m.Title
	}
	assert.Equal(t, titles, got)
}

func ptr(s string) *string {
	return &s
}
