package api

import (
	"net/http"
	"strconv"

	reqdto "orbital-booking/internal/handler/dto/request"
	resdto "orbital-booking/internal/handler/dto/response"
	"orbital-booking/internal/handler/httperr"
	"orbital-booking/internal/handler/middleware"
	"orbital-booking/internal/usecase/commands"
	"orbital-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review a destination for a completed reservation
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.CreateReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateReview(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		abortWithUsecaseError(c, err, "Create review failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateReviewResponse{ID: result.ReviewID.String()})
}

// @Summary List destination reviews
// @Description List reviews for a destination with an optional minimum rating and keyset pagination
// @Tags reviews
// @Produce json
// @Param id path string true "Destination ID"
// @Param min_rating query int false "Minimum rating (1-5)"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.ReviewPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /destinations/{id}/reviews [get]
func (h *ReviewHandler) ListByDestination(c *gin.Context) {
	destinationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid destination id", nil)
		return
	}
	var filters queries.ReviewFilters
	if v := c.Query("min_rating"); v != "" {
		iv, convErr := strconv.Atoi(v)
		if convErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, convErr, "Invalid min_rating", nil)
			return
		}
		filters.MinRating = &iv
	}
	limit, cursor, err := pageParams(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
		return
	}

	items, next, err := h.q.ListByDestination(c.Request.Context(), destinationID, filters, cursor, limit)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list reviews")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewList(items, next))
}

// @Summary Get destination rating stats
// @Description Average rating and histogram for a destination
// @Tags reviews
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} resdto.DestinationRatingStatsResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /destinations/{id}/rating-stats [get]
func (h *ReviewHandler) GetDestinationStats(c *gin.Context) {
	destinationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid destination id", nil)
		return
	}
	stats, err := h.q.GetDestinationRatingStats(c.Request.Context(), destinationID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get rating stats")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDestinationRatingStats(stats))
}
