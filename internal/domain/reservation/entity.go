package reservation

import (
	"time"

	"orbital-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPassengerCount  = errs.Class("passenger count must be positive", errs.ErrInvalidInput)
	ErrInvalidQuantity        = errs.Class("activity quantity must be positive", errs.ErrInvalidInput)
	ErrInvalidActivity        = errs.Class("activity id is required", errs.ErrInvalidInput)
	ErrNegativePrice          = errs.Class("price cannot be negative", errs.ErrInvalidInput)
	ErrAmountOutOfRange       = errs.Class("price exceeds the supported amount", errs.ErrInvalidInput)
	ErrPassengerCountTooLarge = errs.Class("passenger count exceeds the per-reservation limit", errs.ErrInvalidInput)
	ErrQuantityTooLarge       = errs.Class("activity quantity exceeds the per-line limit", errs.ErrInvalidInput)
	ErrInvalidStatus          = errs.Class("invalid reservation status", errs.ErrInvalidInput)
	ErrInvalidTravelDates     = errs.Class("invalid travel dates", errs.ErrInvalidInput)
	ErrIllegalTransition      = errs.Class("illegal reservation state transition", errs.ErrInvalidInput)
	ErrInconsistentQuote      = errs.Class("quote total does not match its subtotals", errs.ErrInvalidInput)
	ErrActivityNotPriced      = errs.Class("activity has no catalog price", errs.ErrNotFound)
	ErrNotOwner               = errs.Class("reservation belongs to another user", errs.ErrForbidden)
	ErrAlreadyCanceled        = errs.Class("reservation is already canceled", errs.ErrAlreadyTerminal)
	ErrReservationCompleted   = errs.Class("reservation is already completed", errs.ErrAlreadyTerminal)
)

// RouteSpec is the part of a route captured on the reservation at booking time.
type RouteSpec struct {
	ID            uuid.UUID
	ShipID        uuid.UUID
	BasePrice     Money
	DepartureDate time.Time
	ReturnDate    time.Time
}

type Reservation struct {
	id                 uuid.UUID
	userID             uuid.UUID
	routeID            uuid.UUID
	shipID             uuid.UUID
	passengers         PassengerCount
	status             Status
	routeSubtotal      Money
	activitiesSubtotal Money
	total              Money
	dates              TravelDates
	lineItems          []LineItem
	createdAt          time.Time
	updatedAt          time.Time
}

func NewReservation(route RouteSpec, userID uuid.UUID, passengers PassengerCount, quote Quote, now time.Time) (*Reservation, error) {
	if !quote.Total.InRange() {
		return nil, ErrAmountOutOfRange
	}
	if quote.Total != quote.RouteSubtotal.Add(quote.ActivitiesSubtotal) {
		return nil, ErrInconsistentQuote
	}
	if quote.Total.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Reservation{
		id:                 uuid.New(),
		userID:             userID,
		routeID:            route.ID,
		shipID:             route.ShipID,
		passengers:         passengers,
		status:             StatusPending,
		routeSubtotal:      quote.RouteSubtotal,
		activitiesSubtotal: quote.ActivitiesSubtotal,
		total:              quote.Total,
		dates:              SnapshotTravelDates(route.DepartureDate, route.ReturnDate),
		lineItems:          quote.LineItems,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructReservation(
	id, userID, routeID, shipID uuid.UUID,
	passengers int,
	status Status,
	routeSubtotal, activitiesSubtotal, total Money,
	dates TravelDates,
	lineItems []LineItem,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                 id,
		userID:             userID,
		routeID:            routeID,
		shipID:             shipID,
		passengers:         PassengerCount{value: passengers},
		status:             status,
		routeSubtotal:      routeSubtotal,
		activitiesSubtotal: activitiesSubtotal,
		total:              total,
		dates:              dates,
		lineItems:          lineItems,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Cancel moves the reservation to cancelada. The caller releases seats only
// when this returns nil.
func (r *Reservation) Cancel(now time.Time) error {
	switch r.status {
	case StatusCanceled:
		return ErrAlreadyCanceled
	case StatusCompleted:
		return ErrReservationCompleted
	}
	return r.transitionTo(StatusCanceled, now)
}

func (r *Reservation) Confirm(now time.Time) error {
	return r.transitionTo(StatusConfirmed, now)
}

func (r *Reservation) Complete(now time.Time) error {
	return r.transitionTo(StatusCompleted, now)
}

func (r *Reservation) transitionTo(next Status, now time.Time) error {
	if !r.status.CanTransitionTo(next) {
		switch r.status {
		case StatusCanceled:
			return ErrAlreadyCanceled
		case StatusCompleted:
			return ErrReservationCompleted
		}
		return ErrIllegalTransition
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) UserID() uuid.UUID          { return r.userID }
func (r *Reservation) RouteID() uuid.UUID         { return r.routeID }
func (r *Reservation) ShipID() uuid.UUID          { return r.shipID }
func (r *Reservation) Passengers() PassengerCount { return r.passengers }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) RouteSubtotal() Money       { return r.routeSubtotal }
func (r *Reservation) ActivitiesSubtotal() Money  { return r.activitiesSubtotal }
func (r *Reservation) Total() Money               { return r.total }
func (r *Reservation) TravelDates() TravelDates   { return r.dates }
func (r *Reservation) LineItems() []LineItem      { return r.lineItems }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time       { return r.updatedAt }
