package review

import (
	"github.com/google/uuid"
)

type EligibilityInput struct {
	ReservationID uuid.UUID
	UserID        uuid.UUID
	DestinationID uuid.UUID
}

// EligibilityChecker decides whether the user may review the destination
// through the given reservation.
type EligibilityChecker interface {
	CanPostReview(input EligibilityInput) error
}

type Services struct {
	EligibilityChecker EligibilityChecker
}
