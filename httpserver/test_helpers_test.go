package httpserver_test

import (
	"context"
	"encoding/json"
	"io"
	"moviereview/movie"
	"moviereview/pkg/config"
	"moviereview/review"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{}
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) AddMovie(ctx context.Context, mv movie.Movie) (movie.Movie, error) {
	args := m.Called(ctx, mv)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) AddMovies(ctx context.Context, ms []movie.Movie) ([]movie.Movie, error) {
	args := m.Called(ctx, ms)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) ListMovies(ctx context.Context) ([]movie.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) GetMovie(ctx context.Context, id int64) (*movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*movie.Movie), args.Error(1)
}

func (m *MockMovieService) UpdateMovie(ctx context.Context, id int64, u movie.Update) (movie.Movie, error) {
	args := m.Called(ctx, id, u)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) DeleteMovie(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) AddReview(ctx context.Context, r review.Review) (review.Review, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(review.Review), args.Error(1)
}

func newJSONRequest(method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	return request
}

// decodeMessage decodes a response body that is a bare JSON string.
func decodeMessage(t testing.TB, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var msg string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg), "body: %s", rec.Body.String())
	return msg
}

func decodeJSON(t testing.TB, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}

func ptr[T any](v T) *T {
	return &v
}
