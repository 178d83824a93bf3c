package reservation

import (
	"orbital-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateReservation prices the request against the route snapshot and the
// catalog unit prices and returns a pendiente reservation with its line items.
func (f *Factory) CreateReservation(
	route RouteSpec,
	userID uuid.UUID,
	passengers PassengerCount,
	requests []ActivityRequest,
	unitPrices map[uuid.UUID]Money,
) (*Reservation, error) {
	quote, err := f.PriceCalculator.Calculate(route.BasePrice, passengers, requests, unitPrices)
	if err != nil {
		return nil, err
	}
	return NewReservation(route, userID, passengers, quote, f.Clock.Now())
}
