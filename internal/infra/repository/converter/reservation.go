package converter

import (
	"orbital-booking/internal/domain/reservation"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	"orbital-booking/internal/pkg/pgconv"
)

func ReservationToCreateParams(r *reservation.Reservation) (sqlc.CreateReservationParams, error) {
	passengers, err := pgconv.Int32(r.Passengers().Int())
	if err != nil {
		return sqlc.CreateReservationParams{}, err
	}
	dates := r.TravelDates()
	return sqlc.CreateReservationParams{
		ID:                 r.ID(),
		UserID:             r.UserID(),
		RouteID:            r.RouteID(),
		ShipID:             r.ShipID(),
		Passengers:         passengers,
		Status:             r.Status().String(),
		RouteSubtotal:      pgconv.CentsToNumeric(r.RouteSubtotal().Cents()),
		ActivitiesSubtotal: pgconv.CentsToNumeric(r.ActivitiesSubtotal().Cents()),
		TotalPrice:         pgconv.CentsToNumeric(r.Total().Cents()),
		DepartureDate:      pgconv.DateToPgtype(dates.Departure()),
		ReturnDate:         pgconv.DateToPgtype(dates.Return()),
		CreatedAt:          pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(r.UpdatedAt()),
	}, nil
}

func LineItemToCreateParams(r *reservation.Reservation, item reservation.LineItem) (sqlc.CreateReservationLineItemParams, error) {
	quantity, err := pgconv.Int32(item.Quantity())
	if err != nil {
		return sqlc.CreateReservationLineItemParams{}, err
	}
	return sqlc.CreateReservationLineItemParams{
		ID:            item.ID(),
		ReservationID: r.ID(),
		ActivityID:    item.ActivityID(),
		Quantity:      quantity,
		UnitPrice:     pgconv.CentsToNumeric(item.UnitPrice().Cents()),
		LineTotal:     pgconv.CentsToNumeric(item.LineTotal().Cents()),
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt()),
	}, nil
}

func LineItemFromRow(row sqlc.ReservationLineItems) (reservation.LineItem, error) {
	unit, err := pgconv.NumericToCents(row.UnitPrice)
	if err != nil {
		return reservation.LineItem{}, err
	}
	total, err := pgconv.NumericToCents(row.LineTotal)
	if err != nil {
		return reservation.LineItem{}, err
	}
	return reservation.ReconstructLineItem(
		row.ID,
		row.ActivityID,
		int(row.Quantity),
		reservation.NewMoney(unit),
		reservation.NewMoney(total),
	), nil
}

func ReservationFromRow(row sqlc.Reservations, items []reservation.LineItem) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
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

	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		row.RouteID,
		row.ShipID,
		int(row.Passengers),
		status,
		reservation.NewMoney(routeSubtotal),
		reservation.NewMoney(activitiesSubtotal),
		reservation.NewMoney(total),
		reservation.SnapshotTravelDates(
			pgconv.DateFromPgtype(row.DepartureDate),
			pgconv.DateFromPgtype(row.ReturnDate),
		),
		items,
		row.CreatedAt.Time,
		row.UpdatedAt.Time,
	), nil
}
