package commands

import (
	"context"
	"encoding/json"
	"time"

	"orbital-booking/internal/domain/reservation"
	"orbital-booking/internal/pkg/errs"
	"orbital-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Outbox topics. The relay publishes each job with its topic as routing key.
const (
	TopicReservationCreated   = "reservation.created"
	TopicReservationCancelled = "reservation.cancelled"
	TopicReservationConfirmed = "reservation.confirmed"
	TopicReservationCompleted = "reservation.completed"
	TopicReviewCreated        = "review.created"

	jobKindEvent = "event"
)

type ReservationEvent struct {
	ReservationID      uuid.UUID   `json:"reservation_id"`
	UserID             uuid.UUID   `json:"user_id"`
	RouteID            uuid.UUID   `json:"route_id"`
	Passengers         int         `json:"passengers"`
	Status             string      `json:"status"`
	Total              string      `json:"total"`
	RefundedPaymentIDs []uuid.UUID `json:"refunded_payment_ids,omitempty"`
	OccurredAt         time.Time   `json:"occurred_at"`
}

type ReviewEvent struct {
	ReviewID      uuid.UUID `json:"review_id"`
	DestinationID uuid.UUID `json:"destination_id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	Rating        int       `json:"rating"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func newReservationEvent(res *reservation.Reservation, refunded []uuid.UUID) ReservationEvent {
	return ReservationEvent{
		ReservationID:      res.ID(),
		UserID:             res.UserID(),
		RouteID:            res.RouteID(),
		Passengers:         res.Passengers().Int(),
		Status:             res.Status().String(),
		Total:              res.Total().String(),
		RefundedPaymentIDs: refunded,
		OccurredAt:         res.UpdatedAt(),
	}
}

// enqueueEvent writes the event in the caller's transaction; it is published
// only if that transaction commits.
func enqueueEvent(ctx context.Context, tx shared.Tx, topic string, event any, now time.Time) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), jobKindEvent, topic, payload, now)
}
