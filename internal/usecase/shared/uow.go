package shared

import (
	"context"
	"time"

	"orbital-booking/internal/domain/reservation"
	"orbital-booking/internal/domain/review"
	sqlc "orbital-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations. Failures are returned to the caller, never retried.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Inventory() InventoryLedger
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Notifications() NotificationRepository
	Reconciliation() ReconciliationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads is the catalog reader used by the write side. Inside a Tx it
// reads through the transaction.
type CommandReads interface {
	RouteSnapshot(ctx context.Context, routeID uuid.UUID) (*RouteSnapshot, error)
	ActivityPrice(ctx context.Context, activityID uuid.UUID) (reservation.Money, error)
	// AvailableSeats also answers for inactive routes.
	AvailableSeats(ctx context.Context, routeID uuid.UUID) (int, error)
	ReservationReviewContext(ctx context.Context, reservationID uuid.UUID) (*ReservationReviewSnapshot, error)
}

// InventoryLedger is the only writer of routes.available_seats on the request path.
type InventoryLedger interface {
	ReserveSeats(ctx context.Context, tx sqlc.DBTX, routeID uuid.UUID, count int) (int, error)
	ReleaseSeats(ctx context.Context, tx sqlc.DBTX, routeID uuid.UUID, count int) (SeatRelease, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	LoadForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation, from reservation.Status) error
}

type PaymentRepository interface {
	FlagRefunds(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) ([]uuid.UUID, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
}

type RatingStatsRepository interface {
	RecalcDestinationRatingStats(ctx context.Context, tx sqlc.DBTX, destinationID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type ReconciliationRepository interface {
	ListRouteIDs(ctx context.Context, tx sqlc.DBTX) ([]uuid.UUID, error)
	LockRouteSeats(ctx context.Context, tx sqlc.DBTX, routeID uuid.UUID) (total, available int, err error)
	SumActivePassengers(ctx context.Context, tx sqlc.DBTX, routeID uuid.UUID) (int, error)
	SetAvailableSeats(ctx context.Context, tx sqlc.DBTX, routeID uuid.UUID, available int) error
	ListOrphans(ctx context.Context, tx sqlc.DBTX) ([]Orphan, error)
	ListInvalidDates(ctx context.Context, tx sqlc.DBTX) ([]InvalidDates, error)
	UpdateTravelDates(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID, dates reservation.TravelDates) error
	RecordFinding(ctx context.Context, tx sqlc.DBTX, f Finding) error
}
