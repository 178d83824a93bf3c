package repository

import (
	"context"

	"orbital-booking/internal/domain/reservation"
	"orbital-booking/internal/infra"
	"orbital-booking/internal/infra/repository/converter"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	"orbital-booking/internal/pkg/errs"
	"orbital-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

var ErrStaleReservation = errs.Class("reservation status changed concurrently", errs.ErrStorageFailure)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	CreateReservationLineItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationLineItemParams) error
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	ListLineItemsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ReservationLineItems, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create writes the reservation header and every line item. It must run in
// the same transaction as the seat debit. All rows are converted before the
// first insert.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	header, err := converter.ReservationToCreateParams(res)
	if err != nil {
		return infra.WrapRepoErr("invalid reservation", err)
	}
	lines := make([]sqlc.CreateReservationLineItemParams, 0, len(res.LineItems()))
	for _, item := range res.LineItems() {
		line, err := converter.LineItemToCreateParams(res, item)
		if err != nil {
			return infra.WrapRepoErr("invalid reservation line item", err)
		}
		lines = append(lines, line)
	}

	if err := r.queries.CreateReservation(ctx, tx, header); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	for _, line := range lines {
		if err := r.queries.CreateReservationLineItem(ctx, tx, line); err != nil {
			return infra.WrapRepoErr("failed to create reservation line item", err)
		}
	}
	return nil
}

// LoadForUpdate locks the reservation row until the transaction ends.
func (r *ReservationRepository) LoadForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation", err)
	}

	itemRows, err := r.queries.ListLineItemsByReservation(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation line items", err)
	}

	items := make([]reservation.LineItem, 0, len(itemRows))
	for _, ir := range itemRows {
		item, cerr := converter.LineItemFromRow(ir)
		if cerr != nil {
			return nil, infra.WrapRepoErr("invalid reservation line item", cerr)
		}
		items = append(items, item)
	}

	res, err := converter.ReservationFromRow(row, items)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation row", err)
	}
	return res, nil
}

// UpdateStatus persists res.Status() only if the stored status is still from.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation, from reservation.Status) error {
	affected, err := r.queries.UpdateReservationStatus(ctx, tx, sqlc.UpdateReservationStatusParams{
		ToStatus:   res.Status().String(),
		UpdatedAt:  pgconv.TimeToPgtype(res.UpdatedAt()),
		ID:         res.ID(),
		FromStatus: from.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return ErrStaleReservation
	}
	return nil
}
