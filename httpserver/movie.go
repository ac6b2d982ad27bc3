package httpserver

import (
	"moviereview/errs"
	"moviereview/movie"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

var errMovieServiceMissing = errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")

func (s *Server) RegisterMovieRoutes() {
	g := s.Router.Group("/movie")
	g.POST("/add", s.handleAddMovie, requireJSON)
	g.POST("/add/multi", s.handleAddMovies, requireJSON)
	g.GET("/get", s.handleListMovies)
	g.GET("/get/:id", s.handleGetMovie)
	g.PUT("/update/:id", s.handleUpdateMovie, requireJSON)
	g.DELETE("/delete/:id", s.handleDeleteMovie)
}

// handleAddMovie godoc
// @Summary Add Movie
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body AddMovieRequest true "title and genre are required"
// @Success 200 {object} MovieResponse
// @Failure 400 {string} string
// @Failure 409 {string} string
// @Failure 415 {string} string
// @Router /movie/add [post]
func (s *Server) handleAddMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	var req AddMovieRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	m, err := s.MovieService.AddMovie(c.Request().Context(), req.ToMovie())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newMovieResponse(m))
}

// handleAddMovies godoc
// @Summary Add Movies
// @Description Inserts every movie whose title is new; existing titles are skipped silently
// @Tags movies
// @Accept json
// @Produce json
// @Param movies body []AddMovieRequest true "movies to import"
// @Success 200 {array} MovieResponse
// @Failure 400 {string} string
// @Failure 415 {string} string
// @Router /movie/add/multi [post]
func (s *Server) handleAddMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	var reqs []AddMovieRequest
	if err := bindJSON(c, &reqs); err != nil {
		return err
	}

	movies := make([]movie.Movie, len(reqs))
	for i := range reqs {
		if err := c.Validate(&reqs[i]); err != nil {
			return err
		}
		movies[i] = reqs[i].ToMovie()
	}

	created, err := s.MovieService.AddMovies(c.Request().Context(), movies)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newMovieListResponse(created))
}

// handleListMovies godoc
// @Summary List Movies
// @Tags movies
// @Produce json
// @Success 200 {array} MovieResponse
// @Router /movie/get [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	movies, err := s.MovieService.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newMovieListResponse(movies))
}

// handleGetMovie godoc
// @Summary Get Movie
// @Description Responds with null when no movie has the id
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} MovieResponse
// @Router /movie/get/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	id, ok := movieID(c)
	if !ok {
		return c.JSON(http.StatusOK, nil)
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if m == nil {
		return c.JSON(http.StatusOK, nil)
	}

	return c.JSON(http.StatusOK, newMovieResponse(*m))
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Only the provided fields are changed
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body UpdateMovieRequest true "fields to change"
// @Success 200 {object} MovieResponse
// @Failure 404 {string} string
// @Failure 409 {string} string
// @Router /movie/update/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	id, ok := movieID(c)
	if !ok {
		return movie.ErrMovieNotFound
	}

	var req UpdateMovieRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	m, err := s.MovieService.UpdateMovie(c.Request().Context(), id, req.ToUpdate())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newMovieResponse(m))
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Description Deletes the movie and all of its reviews
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {string} string
// @Failure 404 {string} string
// @Router /movie/delete/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	id, ok := movieID(c)
	if !ok {
		return movie.ErrMovieNotFound
	}

	if err := s.MovieService.DeleteMovie(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, movieDeletedMessage)
}

func movieID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
