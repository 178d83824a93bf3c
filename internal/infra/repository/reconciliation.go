package repository

import (
	"context"
	"encoding/json"

	"orbital-booking/internal/domain/reservation"
	"orbital-booking/internal/infra"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	"orbital-booking/internal/pkg/pgconv"
	"orbital-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReconciliationQueries interface {
	ListRouteIDs(ctx context.Context, db sqlc.DBTX) ([]uuid.UUID, error)
	GetRouteSeatsForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRouteSeatsForUpdateRow, error)
	SumActivePassengersByRoute(ctx context.Context, db sqlc.DBTX, routeID uuid.UUID) (int32, error)
	SetRouteAvailableSeats(ctx context.Context, db sqlc.DBTX, arg sqlc.SetRouteAvailableSeatsParams) error
	ListOrphanReservations(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListOrphanReservationsRow, error)
	ListOrphanLineItems(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListOrphanLineItemsRow, error)
	ListReservationsWithInvalidDates(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListReservationsWithInvalidDatesRow, error)
	UpdateReservationTravelDates(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationTravelDatesParams) error
	CreateReconciliationFinding(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReconciliationFindingParams) error
}

type ReconciliationRepository struct {
	queries ReconciliationQueries
	db      sqlc.DBTX
}

func NewReconciliationRepository(queries ReconciliationQueries, db sqlc.DBTX) *ReconciliationRepository {
	return &ReconciliationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReconciliationRepository) ListRouteIDs(ctx context.Context, tx sqlc.DBTX) ([]uuid.UUID, error) {
	ids, err := r.queries.ListRouteIDs(ctx, tx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list routes", err)
	}
	return ids, nil
}

// LockRouteSeats holds the route row lock until the transaction ends so
// concurrent reserve and release wait for the correction.
func (r *ReconciliationRepository) LockRouteSeats(ctx context.Context, tx sqlc.DBTX, routeID uuid.UUID) (int, int, error) {
	row, err := r.queries.GetRouteSeatsForUpdate(ctx, tx, routeID)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to lock route seats", err)
	}
	return int(row.TotalSeats), int(row.AvailableSeats), nil
}

func (r *ReconciliationRepository) SumActivePassengers(ctx context.Context, tx sqlc.DBTX, routeID uuid.UUID) (int, error) {
	sum, err := r.queries.SumActivePassengersByRoute(ctx, tx, routeID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum active passengers", err)
	}
	return int(sum), nil
}

func (r *ReconciliationRepository) SetAvailableSeats(ctx context.Context, tx sqlc.DBTX, routeID uuid.UUID, available int) error {
	err := r.queries.SetRouteAvailableSeats(ctx, tx, sqlc.SetRouteAvailableSeatsParams{
		ID:             routeID,
		AvailableSeats: pgconv.IntToInt32(available),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set available seats", err)
	}
	return nil
}

func (r *ReconciliationRepository) ListOrphans(ctx context.Context, tx sqlc.DBTX) ([]shared.Orphan, error) {
	resRows, err := r.queries.ListOrphanReservations(ctx, tx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orphan reservations", err)
	}
	itemRows, err := r.queries.ListOrphanLineItems(ctx, tx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orphan line items", err)
	}

	var orphans []shared.Orphan
	for _, row := range resRows {
		if row.MissingRoute {
			orphans = append(orphans, shared.Orphan{Kind: shared.OrphanReservationMissingRoute, SubjectID: row.ID, ReferenceID: row.RouteID})
		}
		if row.MissingUser {
			orphans = append(orphans, shared.Orphan{Kind: shared.OrphanReservationMissingUser, SubjectID: row.ID, ReferenceID: row.UserID})
		}
	}
	for _, row := range itemRows {
		if row.MissingReservation {
			orphans = append(orphans, shared.Orphan{Kind: shared.OrphanLineItemMissingReservation, SubjectID: row.ID, ReferenceID: row.ReservationID})
		}
		if row.MissingActivity {
			orphans = append(orphans, shared.Orphan{Kind: shared.OrphanLineItemMissingActivity, SubjectID: row.ID, ReferenceID: row.ActivityID})
		}
	}
	return orphans, nil
}

func (r *ReconciliationRepository) ListInvalidDates(ctx context.Context, tx sqlc.DBTX) ([]shared.InvalidDates, error) {
	rows, err := r.queries.ListReservationsWithInvalidDates(ctx, tx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations with invalid dates", err)
	}

	result := make([]shared.InvalidDates, len(rows))
	for i, row := range rows {
		result[i] = shared.InvalidDates{
			ReservationID: row.ID,
			RouteID:       row.RouteID,
			Current: reservation.SnapshotTravelDates(
				pgconv.DateFromPgtype(row.DepartureDate),
				pgconv.DateFromPgtype(row.ReturnDate),
			),
			Route: reservation.SnapshotTravelDates(
				pgconv.DateFromPgtype(row.RouteDepartureDate),
				pgconv.DateFromPgtype(row.RouteReturnDate),
			),
			CreatedAt: row.CreatedAt.Time,
		}
	}
	return result, nil
}

func (r *ReconciliationRepository) UpdateTravelDates(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID, dates reservation.TravelDates) error {
	err := r.queries.UpdateReservationTravelDates(ctx, tx, sqlc.UpdateReservationTravelDatesParams{
		ID:            reservationID,
		DepartureDate: pgconv.DateToPgtype(dates.Departure()),
		ReturnDate:    pgconv.DateToPgtype(dates.Return()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update travel dates", err)
	}
	return nil
}

func (r *ReconciliationRepository) RecordFinding(ctx context.Context, tx sqlc.DBTX, f shared.Finding) error {
	detail := []byte("{}")
	if len(f.Detail) > 0 {
		b, err := json.Marshal(f.Detail)
		if err != nil {
			return infra.WrapRepoErr("failed to encode finding detail", err)
		}
		detail = b
	}

	err := r.queries.CreateReconciliationFinding(ctx, tx, sqlc.CreateReconciliationFindingParams{
		RunID:     f.RunID,
		Kind:      string(f.Kind),
		SubjectID: f.SubjectID,
		RouteID:   pgconv.UUIDPtrToPgtype(f.RouteID),
		Detail:    detail,
		Corrected: f.Corrected,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record reconciliation finding", err)
	}
	return nil
}
