//go:build unit || e2e

package builder

import (
	"time"

	"orbital-booking/internal/domain/reservation"
	reqdto "orbital-booking/internal/handler/dto/request"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	"orbital-booking/internal/pkg/clock"
	"orbital-booking/internal/pkg/pgconv"
	"orbital-booking/internal/usecase/commands"
	"orbital-booking/internal/usecase/queries"
	"orbital-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Catalog values used across the booking scenarios.
const (
	DefaultBasePriceCents     int64 = 12000000 // 120000.00
	DefaultActivityPriceCents int64 = 250000   // 2500.00
	DefaultTotalSeats               = 40
)

type ActivityLine struct {
	ActivityID uuid.UUID
	Quantity   int
	UnitCents  int64
}

type ReservationBuilder struct {
	UserID         uuid.UUID
	RouteID        uuid.UUID
	ShipID         uuid.UUID
	DestinationID  uuid.UUID
	BasePriceCents int64
	Passengers     int
	Activities     []ActivityLine
	Status         reservation.Status
	DepartureDate  time.Time
	ReturnDate     time.Time
	TotalSeats     int
	AvailableSeats int
	Now            time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		UserID:         uuid.New(),
		RouteID:        uuid.New(),
		ShipID:         uuid.New(),
		DestinationID:  uuid.New(),
		BasePriceCents: DefaultBasePriceCents,
		Passengers:     1,
		Status:         reservation.StatusPending,
		DepartureDate:  time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:     time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		TotalSeats:     DefaultTotalSeats,
		AvailableSeats: DefaultTotalSeats,
		Now:            now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods

// BuildDomain prices the builder's request through the real factory and then
// moves the reservation to Status.
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	passengers, err := reservation.NewPassengerCount(b.Passengers)
	if err != nil {
		return nil, err
	}

	requests := make([]reservation.ActivityRequest, 0, len(b.Activities))
	prices := make(map[uuid.UUID]reservation.Money, len(b.Activities))
	for _, a := range b.Activities {
		req, err := reservation.NewActivityRequest(a.ActivityID, a.Quantity)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
		prices[a.ActivityID] = reservation.NewMoney(a.UnitCents)
	}

	factory := reservation.NewFactory(clock.NewMockClock(b.Now), reservation.NewDefaultPriceCalculator())
	res, err := factory.CreateReservation(b.BuildRouteSnapshot().Spec(), b.UserID, passengers, requests, prices)
	if err != nil {
		return nil, err
	}

	switch b.Status {
	case reservation.StatusConfirmed:
		err = res.Confirm(b.Now)
	case reservation.StatusCompleted:
		if err = res.Confirm(b.Now); err == nil {
			err = res.Complete(b.Now)
		}
	case reservation.StatusCanceled:
		err = res.Cancel(b.Now)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (b *ReservationBuilder) BuildRouteSnapshot() *shared.RouteSnapshot {
	return &shared.RouteSnapshot{
		ID:             b.RouteID,
		DestinationID:  b.DestinationID,
		ShipID:         b.ShipID,
		BasePrice:      reservation.NewMoney(b.BasePriceCents),
		DepartureDate:  b.DepartureDate,
		ReturnDate:     b.ReturnDate,
		TotalSeats:     b.TotalSeats,
		AvailableSeats: b.AvailableSeats,
	}
}

func (b *ReservationBuilder) BuildCommand() commands.CreateReservationRequest {
	lines := make([]commands.ActivityLine, len(b.Activities))
	for i, a := range b.Activities {
		lines[i] = commands.ActivityLine{ActivityID: a.ActivityID, Quantity: a.Quantity}
	}
	return commands.CreateReservationRequest{
		RouteID:    b.RouteID,
		Passengers: b.Passengers,
		Activities: lines,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	lines := make([]reqdto.ActivityLineRequest, len(b.Activities))
	for i, a := range b.Activities {
		lines[i] = reqdto.ActivityLineRequest{ActivityID: a.ActivityID, Quantity: a.Quantity}
	}
	return reqdto.CreateReservationRequest{
		RouteID:    b.RouteID,
		Passengers: b.Passengers,
		Activities: lines,
	}
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	routeSubtotal, activities := b.subtotals()
	return sqlc.Reservations{
		ID:                 uuid.New(),
		UserID:             b.UserID,
		RouteID:            b.RouteID,
		ShipID:             b.ShipID,
		Passengers:         int32(b.Passengers),
		Status:             b.Status.String(),
		RouteSubtotal:      pgconv.CentsToNumeric(routeSubtotal),
		ActivitiesSubtotal: pgconv.CentsToNumeric(activities),
		TotalPrice:         pgconv.CentsToNumeric(routeSubtotal + activities),
		DepartureDate:      pgconv.DateToPgtype(b.DepartureDate),
		ReturnDate:         pgconv.DateToPgtype(b.ReturnDate),
		CreatedAt:          pgtype.Timestamptz{Time: b.Now, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	routeSubtotal, activities := b.subtotals()
	dep, ret := b.DepartureDate, b.ReturnDate
	return &queries.ReservationView{
		ID:                      uuid.New(),
		UserID:                  b.UserID,
		RouteID:                 b.RouteID,
		ShipID:                  b.ShipID,
		Passengers:              int32(b.Passengers),
		Status:                  b.Status.String(),
		RouteSubtotalCents:      routeSubtotal,
		ActivitiesSubtotalCents: activities,
		TotalCents:              routeSubtotal + activities,
		DepartureDate:           &dep,
		ReturnDate:              &ret,
		LineItems:               []queries.LineItemView{},
		Payments:                []queries.PaymentView{},
		CreatedAt:               b.Now,
		UpdatedAt:               b.Now,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	routeSubtotal, activities := b.subtotals()
	return &queries.ReservationListItem{
		ID:         uuid.New(),
		RouteID:    b.RouteID,
		Passengers: int32(b.Passengers),
		Status:     b.Status.String(),
		TotalCents: routeSubtotal + activities,
		CreatedAt:  b.Now,
	}
}

func (b *ReservationBuilder) BuildAvailabilityView() *queries.RouteAvailabilityView {
	dep, ret := b.DepartureDate, b.ReturnDate
	return &queries.RouteAvailabilityView{
		ID:              b.RouteID,
		DestinationID:   b.DestinationID,
		DestinationName: "Luna Base",
		ShipID:          b.ShipID,
		ShipName:        "Aurora",
		BasePriceCents:  b.BasePriceCents,
		TotalSeats:      int32(b.TotalSeats),
		AvailableSeats:  int32(b.AvailableSeats),
		DepartureDate:   &dep,
		ReturnDate:      &ret,
		IsActive:        true,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	b.UserID = userID
	return b
}

func (b *ReservationBuilder) WithRouteID(routeID uuid.UUID) *ReservationBuilder {
	b.RouteID = routeID
	return b
}

func (b *ReservationBuilder) WithPassengers(n int) *ReservationBuilder {
	b.Passengers = n
	return b
}

func (b *ReservationBuilder) WithBasePrice(cents int64) *ReservationBuilder {
	b.BasePriceCents = cents
	return b
}

func (b *ReservationBuilder) WithActivity(activityID uuid.UUID, quantity int, unitCents int64) *ReservationBuilder {
	b.Activities = append(b.Activities, ActivityLine{ActivityID: activityID, Quantity: quantity, UnitCents: unitCents})
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithSeats(total, available int) *ReservationBuilder {
	b.TotalSeats = total
	b.AvailableSeats = available
	return b
}

func (b *ReservationBuilder) WithTravelDates(departure, ret time.Time) *ReservationBuilder {
	b.DepartureDate = departure
	b.ReturnDate = ret
	return b
}

func (b *ReservationBuilder) subtotals() (int64, int64) {
	route := b.BasePriceCents * int64(b.Passengers)
	var activities int64
	for _, a := range b.Activities {
		activities += a.UnitCents * int64(a.Quantity)
	}
	return route, activities
}
