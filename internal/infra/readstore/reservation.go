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
)

type ReservationViewQueries interface {
	GetReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	ListLineItemsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ReservationLineItems, error)
	ListPaymentsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.Payments, error)
	ListReservationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByUserParams) ([]sqlc.Reservations, error)
	GetReservationReviewContext(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationReviewContextRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("reservation not found", err)
	}

	itemRows, err := r.queries.ListLineItemsByReservation(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation line items", err)
	}

	paymentRows, err := r.queries.ListPaymentsByReservation(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation payments", err)
	}

	view, err := toReservationView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation row", err)
	}

	view.LineItems = make([]queries.LineItemView, 0, len(itemRows))
	for _, ir := range itemRows {
		unit, cerr := pgconv.NumericToCents(ir.UnitPrice)
		if cerr != nil {
			return nil, infra.WrapRepoErr("invalid line item unit price", cerr)
		}
		total, cerr := pgconv.NumericToCents(ir.LineTotal)
		if cerr != nil {
			return nil, infra.WrapRepoErr("invalid line item total", cerr)
		}
		view.LineItems = append(view.LineItems, queries.LineItemView{
			ID:             ir.ID,
			ActivityID:     ir.ActivityID,
			Quantity:       ir.Quantity,
			UnitPriceCents: unit,
			LineTotalCents: total,
		})
	}

	view.Payments = make([]queries.PaymentView, 0, len(paymentRows))
	for _, pr := range paymentRows {
		amount, cerr := pgconv.NumericToCents(pr.Amount)
		if cerr != nil {
			return nil, infra.WrapRepoErr("invalid payment amount", cerr)
		}
		view.Payments = append(view.Payments, queries.PaymentView{
			ID:          pr.ID,
			AmountCents: amount,
			Method:      pr.Method,
			Status:      pr.Status,
			CreatedAt:   pr.CreatedAt.Time,
		})
	}

	return view, nil
}

func (r *ReservationReadStore) FindByUser(ctx context.Context, userID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.ReservationListItem, error) {
	params := sqlc.ListReservationsByUserParams{
		UserID: userID,
		Lim:    limit,
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.queries.ListReservationsByUser(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		total, cerr := pgconv.NumericToCents(row.TotalPrice)
		if cerr != nil {
			return nil, infra.WrapRepoErr("invalid reservation total", cerr)
		}
		result[i] = &queries.ReservationListItem{
			ID:            row.ID,
			RouteID:       row.RouteID,
			Passengers:    row.Passengers,
			Status:        row.Status,
			TotalCents:    total,
			DepartureDate: pgconv.DatePtrFromPgtype(row.DepartureDate),
			ReturnDate:    pgconv.DatePtrFromPgtype(row.ReturnDate),
			CreatedAt:     row.CreatedAt.Time,
		}
	}
	return result, nil
}

// ReviewContext is what review eligibility needs: owner, state and the
// destination of the booked route.
func (r *ReservationReadStore) ReviewContext(ctx context.Context, reservationID uuid.UUID) (*shared.ReservationReviewSnapshot, error) {
	row, err := r.queries.GetReservationReviewContext(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("reservation not found", err)
	}

	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation status", err)
	}

	return &shared.ReservationReviewSnapshot{
		UserID:        row.UserID,
		Status:        status,
		DestinationID: row.DestinationID,
	}, nil
}

func toReservationView(row sqlc.Reservations) (*queries.ReservationView, error) {
	routeSubtotal, err := pgconv.NumericToCents(row.RouteSubtotal)
	if err != nil {
		return nil, err
	}
	activitiesSubtotal, err := pgconv.NumericToCents(row.ActivitiesSubtotal)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.NumericToCents(row.TotalPrice)
	if err != nil {
		return nil, err
	}

	return &queries.ReservationView{
		ID:                      row.ID,
		UserID:                  row.UserID,
		RouteID:                 row.RouteID,
		ShipID:                  row.ShipID,
		Passengers:              row.Passengers,
		Status:                  row.Status,
		RouteSubtotalCents:      routeSubtotal,
		ActivitiesSubtotalCents: activitiesSubtotal,
		TotalCents:              total,
		DepartureDate:           pgconv.DatePtrFromPgtype(row.DepartureDate),
		ReturnDate:              pgconv.DatePtrFromPgtype(row.ReturnDate),
		CreatedAt:               row.CreatedAt.Time,
		UpdatedAt:               row.UpdatedAt.Time,
	}, nil
}
