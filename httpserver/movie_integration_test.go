package httpserver_test

import (
	"moviereview/httpserver"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := MustCreateTestDatabase(t)
	MigrateTestDatabase(t, db, "../migrations")
	server := MustCreateServer(t, db)

	var created httpserver.MovieResponse
	t.Run("add movie", func(t *testing.T) {
		rec := serve(server, newJSONRequest(http.MethodPost, "/movie/add",
			`{"title":"Inception","genre":"Sci-Fi","mpaa_rating":"PG-13"}`))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		decodeJSON(t, rec, &created)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Inception", created.Title)
		assert.Equal(t, "PG-13", *created.MPAARating)
		assert.Nil(t, created.PosterImage)
		assert.Empty(t, created.AllReviews)
	})
	id := strconv.FormatInt(created.ID, 10)

	t.Run("duplicate title is rejected", func(t *testing.T) {
		rec := serve(server, newJSONRequest(http.MethodPost, "/movie/add", `{"title":"Inception","genre":"Drama"}`))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("add review", func(t *testing.T) {
		rec := serve(server, newJSONRequest(http.MethodPost, "/review/add",
			`{"star_rating":4.5,"review_text":"Great","movie_id":`+id+`}`))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp httpserver.ReviewResponse
		decodeJSON(t, rec, &resp)
		assert.NotZero(t, resp.ID)
		assert.Equal(t, 4.5, resp.StarRating)
		assert.Equal(t, created.ID, resp.MovieID)
	})

	t.Run("review for unknown movie is rejected", func(t *testing.T) {
		rec := serve(server, newJSONRequest(http.MethodPost, "/review/add", `{"star_rating":1,"movie_id":999999}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get movie includes review", func(t *testing.T) {
		rec := serve(server, httptest.NewRequest(http.MethodGet, "/movie/get/"+id, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp httpserver.MovieResponse
		decodeJSON(t, rec, &resp)
		require.Len(t, resp.AllReviews, 1)
		assert.Equal(t, "Great", *resp.AllReviews[0].ReviewText)
	})

	t.Run("bulk add skips existing titles", func(t *testing.T) {
		rec := serve(server, newJSONRequest(http.MethodPost, "/movie/add/multi",
			`[{"title":"Inception","genre":"Sci-Fi"},{"title":"Heat","genre":"Crime"},{"title":"Heat","genre":"Crime"}]`))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp []httpserver.MovieResponse
		decodeJSON(t, rec, &resp)
		require.Len(t, resp, 1)
		assert.Equal(t, "Heat", resp[0].Title)
	})

	t.Run("update changes only provided fields", func(t *testing.T) {
		rec := serve(server, newJSONRequest(http.MethodPut, "/movie/update/"+id, `{"genre":"Thriller"}`))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp httpserver.MovieResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, "Thriller", resp.Genre)
		assert.Equal(t, "Inception", resp.Title)
		assert.Equal(t, "PG-13", *resp.MPAARating)
	})

	t.Run("delete removes movie and reviews", func(t *testing.T) {
		rec := serve(server, httptest.NewRequest(http.MethodDelete, "/movie/delete/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Movie successfully deleted", decodeMessage(t, rec))

		rec = serve(server, httptest.NewRequest(http.MethodGet, "/movie/get/"+id, nil))
		assert.JSONEq(t, `null`, rec.Body.String())

		var count int64
		require.NoError(t, db.Table("review").Where("movie_id = ?", created.ID).Count(&count).Error)
		assert.Zero(t, count)

		rec = serve(server, httptest.NewRequest(http.MethodDelete, "/movie/delete/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list returns remaining movies", func(t *testing.T) {
		rec := serve(server, httptest.NewRequest(http.MethodGet, "/movie/get", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []httpserver.MovieResponse
		decodeJSON(t, rec, &resp)
		require.Len(t, resp, 1)
		assert.Equal(t, "Heat", resp[0].Title)
	})
}
