package reservation

import (
	"github.com/google/uuid"
)

// Quote is the priced breakdown of a reservation request.
type Quote struct {
	RouteSubtotal      Money
	ActivitiesSubtotal Money
	Total              Money
	LineItems          []LineItem
}

type PriceCalculator interface {
	Calculate(basePrice Money, passengers PassengerCount, requests []ActivityRequest, unitPrices map[uuid.UUID]Money) (Quote, error)
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

// Calculate prices the route for every passenger and each activity at its
// catalog unit price. unitPrices must hold an entry for every requested activity.
func (pc *DefaultPriceCalculator) Calculate(
	basePrice Money,
	passengers PassengerCount,
	requests []ActivityRequest,
	unitPrices map[uuid.UUID]Money,
) (Quote, error) {
	if basePrice.IsNegative() {
		return Quote{}, ErrNegativePrice
	}
	if passengers.Int() <= 0 {
		return Quote{}, ErrInvalidPassengerCount
	}

	routeSubtotal, err := basePrice.Mul(passengers.Int())
	if err != nil {
		return Quote{}, err
	}
	activities := NewMoney(0)
	items := make([]LineItem, 0, len(requests))

	for _, req := range requests {
		if req.Quantity() <= 0 {
			return Quote{}, ErrInvalidQuantity
		}
		unit, ok := unitPrices[req.ActivityID()]
		if !ok {
			return Quote{}, ErrActivityNotPriced
		}
		if unit.IsNegative() {
			return Quote{}, ErrNegativePrice
		}
		lineTotal, err := unit.Mul(req.Quantity())
		if err != nil {
			return Quote{}, err
		}
		items = append(items, LineItem{
			id:         uuid.New(),
			activityID: req.ActivityID(),
			quantity:   req.Quantity(),
			unitPrice:  unit,
			lineTotal:  lineTotal,
		})
		if activities, err = activities.CheckedAdd(lineTotal); err != nil {
			return Quote{}, err
		}
	}

	total, err := routeSubtotal.CheckedAdd(activities)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		RouteSubtotal:      routeSubtotal,
		ActivitiesSubtotal: activities,
		Total:              total,
		LineItems:          items,
	}, nil
}
