package repository

import (
	"context"
	"log/slog"

	"orbital-booking/internal/domain/inventory"
	"orbital-booking/internal/infra"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	"orbital-booking/internal/pkg/pgconv"
	"orbital-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type InventoryWriteQueries interface {
	ReserveRouteSeats(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveRouteSeatsParams) (int32, error)
	ReleaseRouteSeats(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseRouteSeatsParams) (sqlc.ReleaseRouteSeatsRow, error)
	RouteIsActive(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
}

// InventoryRepository owns routes.available_seats. Both operations are a
// single conditional statement, so concurrent callers cannot oversell.
type InventoryRepository struct {
	queries InventoryWriteQueries
	db      sqlc.DBTX
}

func NewInventoryRepository(queries InventoryWriteQueries, db sqlc.DBTX) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      db,
	}
}

// ReserveSeats decrements the counter only if enough seats remain and
// returns the remaining count.
func (r *InventoryRepository) ReserveSeats(ctx context.Context, tx sqlc.DBTX, routeID uuid.UUID, count int) (int, error) {
	if count <= 0 {
		return 0, inventory.ErrInvalidSeatCount
	}

	remaining, err := r.queries.ReserveRouteSeats(ctx, tx, sqlc.ReserveRouteSeatsParams{
		Seats: pgconv.IntToInt32(count),
		ID:    routeID,
	})
	if err == nil {
		return int(remaining), nil
	}
	if !pgconv.IsNoRows(err) {
		return 0, infra.WrapRepoErr("failed to reserve seats", err)
	}

	// No row matched: either the route is gone or capacity is short.
	active, err := r.queries.RouteIsActive(ctx, tx, routeID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to check route", err)
	}
	if !active {
		return 0, infra.NewRepoErr(infra.KindNotFound, "route not found")
	}
	return 0, inventory.ErrInsufficientSeats
}

// ReleaseSeats credits seats back, capped at total_seats. Hitting the cap
// means the counter had drifted and is reported, not hidden.
func (r *InventoryRepository) ReleaseSeats(ctx context.Context, tx sqlc.DBTX, routeID uuid.UUID, count int) (shared.SeatRelease, error) {
	if count <= 0 {
		return shared.SeatRelease{}, inventory.ErrInvalidSeatCount
	}

	row, err := r.queries.ReleaseRouteSeats(ctx, tx, sqlc.ReleaseRouteSeatsParams{
		ID:    routeID,
		Seats: pgconv.IntToInt32(count),
	})
	if err != nil {
		return shared.SeatRelease{}, infra.WrapRepoErr("failed to release seats", err)
	}

	release := shared.SeatRelease{
		Available: int(row.AvailableSeats),
		Total:     int(row.TotalSeats),
		Overflow:  int(row.Overflow),
	}
	if release.Overflow > 0 {
		slog.Warn("seat release exceeded total seats",
			slog.String("route_id", routeID.String()),
			slog.Int("released", count),
			slog.Int("overflow", release.Overflow),
			slog.Int("total_seats", release.Total))
	}
	return release, nil
}
