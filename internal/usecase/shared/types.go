package shared

import (
	"time"

	"orbital-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

// Minimal route snapshot for command read operations
type RouteSnapshot struct {
	ID             uuid.UUID
	DestinationID  uuid.UUID
	ShipID         uuid.UUID
	BasePrice      reservation.Money
	DepartureDate  time.Time
	ReturnDate     time.Time
	TotalSeats     int
	AvailableSeats int
}

func (s RouteSnapshot) Spec() reservation.RouteSpec {
	return reservation.RouteSpec{
		ID:            s.ID,
		ShipID:        s.ShipID,
		BasePrice:     s.BasePrice,
		DepartureDate: s.DepartureDate,
		ReturnDate:    s.ReturnDate,
	}
}

type ReservationReviewSnapshot struct {
	UserID        uuid.UUID
	Status        reservation.Status
	DestinationID uuid.UUID
}

type SeatRelease struct {
	Available int
	Total     int
	// Overflow is how many released seats did not fit under total_seats.
	Overflow int
}

type OrphanKind string

const (
	OrphanReservationMissingRoute    OrphanKind = "reservation_missing_route"
	OrphanReservationMissingUser     OrphanKind = "reservation_missing_user"
	OrphanLineItemMissingReservation OrphanKind = "line_item_missing_reservation"
	OrphanLineItemMissingActivity    OrphanKind = "line_item_missing_activity"
)

type Orphan struct {
	Kind        OrphanKind `json:"kind"`
	SubjectID   uuid.UUID  `json:"subject_id"`
	ReferenceID uuid.UUID  `json:"reference_id"`
}

type InvalidDates struct {
	ReservationID uuid.UUID
	RouteID       uuid.UUID
	Current       reservation.TravelDates
	Route         reservation.TravelDates
	CreatedAt     time.Time
}

type FindingKind string

const (
	FindingSeatDrift   FindingKind = "seat_drift"
	FindingOverbooked  FindingKind = "overbooked"
	FindingOrphan      FindingKind = "orphan"
	FindingDateRepair  FindingKind = "date_repair"
	FindingSeatOverCap FindingKind = "seat_release_over_cap"
)

type Finding struct {
	RunID     uuid.UUID
	Kind      FindingKind
	SubjectID uuid.UUID
	RouteID   *uuid.UUID
	Detail    map[string]any
	Corrected bool
}
