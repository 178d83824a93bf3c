package request

import (
	"orbital-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	DestinationID uuid.UUID `json:"destination_id" binding:"required"`
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	Rating        int       `json:"rating" binding:"required,min=1,max=5"`
	Comment       string    `json:"comment" binding:"required,max=1000"`
}

func (r CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		DestinationID: r.DestinationID,
		ReservationID: r.ReservationID,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}
