package api

import (
	"context"
	"net/http"

	"orbital-booking/internal/domain/reservation"
	resdto "orbital-booking/internal/handler/dto/response"
	"orbital-booking/internal/handler/httperr"
	"orbital-booking/internal/usecase/commands"
	"orbital-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves operator endpoints. Role checks happen in the router.
type AdminHandler struct {
	cmds     commands.ReservationCommands
	findings queries.ReconciliationQueries
}

func NewAdminHandler(cmds commands.ReservationCommands, findings queries.ReconciliationQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, findings: findings}
}

type transitionResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	Status        string    `json:"status"`
}

// @Summary Confirm reservation
// @Description Move a pending reservation to confirmed once payment has cleared
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} transitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations/{id}/confirm [post]
func (h *AdminHandler) ConfirmReservation(c *gin.Context) {
	h.transition(c, h.cmds.ConfirmReservation, reservation.StatusConfirmed)
}

// @Summary Complete reservation
// @Description Mark a confirmed reservation as completed after the trip
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} transitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations/{id}/complete [post]
func (h *AdminHandler) CompleteReservation(c *gin.Context) {
	h.transition(c, h.cmds.CompleteReservation, reservation.StatusCompleted)
}

func (h *AdminHandler) transition(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) error, status reservation.Status) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}
	if err := apply(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, "Failed to update reservation")
		return
	}
	c.JSON(http.StatusOK, transitionResponse{ReservationID: id, Status: status.String()})
}

// @Summary List reconciliation findings
// @Description Findings recorded by one consistency guard run
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param runId path string true "Run ID"
// @Success 200 {array} resdto.FindingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/reconciliation/runs/{runId}/findings [get]
func (h *AdminHandler) ListFindings(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("runId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid run id", nil)
		return
	}
	views, err := h.findings.ListFindings(c.Request.Context(), runID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list findings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFindings(views))
}
