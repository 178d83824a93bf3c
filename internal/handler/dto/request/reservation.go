package request

import (
	"orbital-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type ActivityLineRequest struct {
	ActivityID uuid.UUID `json:"activity_id" binding:"required"`
	Quantity   int       `json:"quantity"`
}

type CreateReservationRequest struct {
	RouteID    uuid.UUID             `json:"route_id" binding:"required"`
	Passengers int                   `json:"passengers"`
	Activities []ActivityLineRequest `json:"activities" binding:"omitempty,dive"`
}

// ToCommand keeps validation of counts in the domain so that zero and
// negative values surface as invalid input instead of binding errors.
func (r CreateReservationRequest) ToCommand() commands.CreateReservationRequest {
	lines := make([]commands.ActivityLine, len(r.Activities))
	for i, a := range r.Activities {
		lines[i] = commands.ActivityLine{ActivityID: a.ActivityID, Quantity: a.Quantity}
	}
	return commands.CreateReservationRequest{
		RouteID:    r.RouteID,
		Passengers: r.Passengers,
		Activities: lines,
	}
}
