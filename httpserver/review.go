package httpserver

import (
	"moviereview/errs"
	"net/http"

	"github.com/labstack/echo/v4"
)

var errReviewServiceMissing = errs.Errorf(errs.ENOTIMPLEMENTED, "review service not configured")

func (s *Server) RegisterReviewRoutes() {
	s.Router.POST("/review/add", s.handleAddReview, requireJSON)
}

// handleAddReview godoc
// @Summary Add Review
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body AddReviewRequest true "star_rating and movie_id are required"
// @Success 200 {object} ReviewResponse
// @Failure 400 {string} string
// @Failure 415 {string} string
// @Router /review/add [post]
func (s *Server) handleAddReview(c echo.Context) error {
	if s.ReviewService == nil {
		return errReviewServiceMissing
	}

	var req AddReviewRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	r, err := s.ReviewService.AddReview(c.Request().Context(), req.ToReview())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newReviewResponse(r))
}
