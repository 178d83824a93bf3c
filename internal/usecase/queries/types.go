package queries

import (
	"time"

	"github.com/google/uuid"
)

// Money fields are integer cents; the transport layer formats them.

type ReservationView struct {
	ID                      uuid.UUID      `json:"id"`
	UserID                  uuid.UUID      `json:"user_id"`
	RouteID                 uuid.UUID      `json:"route_id"`
	ShipID                  uuid.UUID      `json:"ship_id"`
	Passengers              int32          `json:"passengers"`
	Status                  string         `json:"status"`
	RouteSubtotalCents      int64          `json:"route_subtotal_cents"`
	ActivitiesSubtotalCents int64          `json:"activities_subtotal_cents"`
	TotalCents              int64          `json:"total_cents"`
	DepartureDate           *time.Time     `json:"departure_date,omitempty"`
	ReturnDate              *time.Time     `json:"return_date,omitempty"`
	LineItems               []LineItemView `json:"line_items"`
	Payments                []PaymentView  `json:"payments"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
}

type LineItemView struct {
	ID             uuid.UUID `json:"id"`
	ActivityID     uuid.UUID `json:"activity_id"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	LineTotalCents int64     `json:"line_total_cents"`
}

type PaymentView struct {
	ID          uuid.UUID `json:"id"`
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReservationListItem struct {
	ID            uuid.UUID  `json:"id"`
	RouteID       uuid.UUID  `json:"route_id"`
	Passengers    int32      `json:"passengers"`
	Status        string     `json:"status"`
	TotalCents    int64      `json:"total_cents"`
	DepartureDate *time.Time `json:"departure_date,omitempty"`
	ReturnDate    *time.Time `json:"return_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type RouteAvailabilityView struct {
	ID              uuid.UUID  `json:"id"`
	DestinationID   uuid.UUID  `json:"destination_id"`
	DestinationName string     `json:"destination_name"`
	ShipID          uuid.UUID  `json:"ship_id"`
	ShipName        string     `json:"ship_name"`
	BasePriceCents  int64      `json:"base_price_cents"`
	TotalSeats      int32      `json:"total_seats"`
	AvailableSeats  int32      `json:"available_seats"`
	DepartureDate   *time.Time `json:"departure_date,omitempty"`
	ReturnDate      *time.Time `json:"return_date,omitempty"`
	IsActive        bool       `json:"is_active"`
}

type ReviewListItem struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	ReservationID uuid.UUID `json:"reservation_id"`
	Rating        int32     `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

type DestinationRatingStats struct {
	DestinationID uuid.UUID `json:"destination_id"`
	TotalReviews  int32     `json:"total_reviews"`
	AverageRating float64   `json:"average_rating"`
	Rating1Count  int32     `json:"rating_1_count"`
	Rating2Count  int32     `json:"rating_2_count"`
	Rating3Count  int32     `json:"rating_3_count"`
	Rating4Count  int32     `json:"rating_4_count"`
	Rating5Count  int32     `json:"rating_5_count"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReconciliationFindingView struct {
	ID        uuid.UUID      `json:"id"`
	RunID     uuid.UUID      `json:"run_id"`
	Kind      string         `json:"kind"`
	SubjectID uuid.UUID      `json:"subject_id"`
	RouteID   *uuid.UUID     `json:"route_id,omitempty"`
	Detail    map[string]any `json:"detail,omitempty"`
	Corrected bool           `json:"corrected"`
	CreatedAt time.Time      `json:"created_at"`
}

type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
