package readstore

import (
	"context"

	"orbital-booking/internal/domain/reservation"
	"orbital-booking/internal/infra"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	"orbital-booking/internal/pkg/pgconv"
	"orbital-booking/internal/usecase/queries"
	"orbital-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadQueries interface {
	GetRouteSnapshot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRouteSnapshotRow, error)
	GetRouteAvailability(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRouteAvailabilityRow, error)
	GetActivityPrice(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (pgtype.Numeric, error)
}

// CatalogReadStore is the Catalog Reader. Route and activity rows belong to
// catalog management; this store never writes them.
type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

// RouteSnapshot reports inactive routes as not found.
func (s *CatalogReadStore) RouteSnapshot(ctx context.Context, routeID uuid.UUID) (*shared.RouteSnapshot, error) {
	row, err := s.queries.GetRouteSnapshot(ctx, s.db, routeID)
	if err != nil {
		return nil, infra.WrapRepoErr("route not found", err)
	}

	basePrice, err := pgconv.NumericToCents(row.BasePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid route base price", err)
	}

	return &shared.RouteSnapshot{
		ID:             row.ID,
		DestinationID:  row.DestinationID,
		ShipID:         row.ShipID,
		BasePrice:      reservation.NewMoney(basePrice),
		DepartureDate:  pgconv.DateFromPgtype(row.DepartureDate),
		ReturnDate:     pgconv.DateFromPgtype(row.ReturnDate),
		TotalSeats:     int(row.TotalSeats),
		AvailableSeats: int(row.AvailableSeats),
	}, nil
}

func (s *CatalogReadStore) ActivityPrice(ctx context.Context, activityID uuid.UUID) (reservation.Money, error) {
	price, err := s.queries.GetActivityPrice(ctx, s.db, activityID)
	if err != nil {
		return reservation.Money{}, infra.WrapRepoErr("activity not found", err)
	}

	cents, err := pgconv.NumericToCents(price)
	if err != nil {
		return reservation.Money{}, infra.WrapRepoErr("invalid activity price", err)
	}
	return reservation.NewMoney(cents), nil
}

func (s *CatalogReadStore) FindAvailability(ctx context.Context, routeID uuid.UUID) (*queries.RouteAvailabilityView, error) {
	row, err := s.queries.GetRouteAvailability(ctx, s.db, routeID)
	if err != nil {
		return nil, infra.WrapRepoErr("route not found", err)
	}

	basePrice, err := pgconv.NumericToCents(row.BasePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid route base price", err)
	}

	return &queries.RouteAvailabilityView{
		ID:              row.ID,
		DestinationID:   row.DestinationID,
		DestinationName: row.DestinationName,
		ShipID:          row.ShipID,
		ShipName:        row.ShipName,
		BasePriceCents:  basePrice,
		TotalSeats:      row.TotalSeats,
		AvailableSeats:  row.AvailableSeats,
		DepartureDate:   pgconv.DatePtrFromPgtype(row.DepartureDate),
		ReturnDate:      pgconv.DatePtrFromPgtype(row.ReturnDate),
		IsActive:        row.IsActive,
	}, nil
}
