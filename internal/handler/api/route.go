package api

import (
	"net/http"

	resdto "orbital-booking/internal/handler/dto/response"
	"orbital-booking/internal/handler/httperr"
	"orbital-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RouteHandler struct {
	q queries.RouteQueries
}

func NewRouteHandler(q queries.RouteQueries) *RouteHandler {
	return &RouteHandler{q: q}
}

// @Summary Get route availability
// @Description Seats left on a route together with its catalog data
// @Tags routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} resdto.RouteAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /routes/{id}/availability [get]
func (h *RouteHandler) GetAvailability(c *gin.Context) {
	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid route id", nil)
		return
	}
	view, err := h.q.GetAvailability(c.Request.Context(), routeID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get availability")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRouteAvailability(view))
}
