package reservation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Money is a fixed-point amount with two fractional digits stored as cents.
type Money struct {
	cents int64
}

// MaxMoneyCents is the largest amount a NUMERIC(14,2) price column holds.
const MaxMoneyCents int64 = 99_999_999_999_999

// Upper bounds on caller-supplied counts.
const (
	MaxPassengerCount   = 1000
	MaxActivityQuantity = 1000
)

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// MoneyFromUnits builds an amount from whole currency units.
func MoneyFromUnits(units int64) Money {
	return Money{cents: units * 100}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// InRange reports whether the amount fits the persisted price columns.
func (m Money) InRange() bool {
	return m.cents >= -MaxMoneyCents && m.cents <= MaxMoneyCents
}

// Mul multiplies by a non-negative quantity. Both operands carry at most two
// fractional digits, so the product is already exact at cent precision.
// Products outside the persisted range fail instead of wrapping.
func (m Money) Mul(qty int) (Money, error) {
	if qty < 0 {
		return Money{}, ErrInvalidQuantity
	}
	if !m.InRange() {
		return Money{}, ErrAmountOutOfRange
	}
	if qty == 0 || m.cents == 0 {
		return Money{}, nil
	}
	abs := m.cents
	if abs < 0 {
		abs = -abs
	}
	if abs > MaxMoneyCents/int64(qty) {
		return Money{}, ErrAmountOutOfRange
	}
	return Money{cents: m.cents * int64(qty)}, nil
}

// CheckedAdd adds two in-range amounts and rejects a sum outside the range.
func (m Money) CheckedAdd(other Money) (Money, error) {
	if !m.InRange() || !other.InRange() {
		return Money{}, ErrAmountOutOfRange
	}
	sum := m.Add(other)
	if !sum.InRange() {
		return Money{}, ErrAmountOutOfRange
	}
	return sum, nil
}

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

type PassengerCount struct {
	value int
}

func NewPassengerCount(v int) (PassengerCount, error) {
	if v <= 0 {
		return PassengerCount{}, ErrInvalidPassengerCount
	}
	if v > MaxPassengerCount {
		return PassengerCount{}, ErrPassengerCountTooLarge
	}
	return PassengerCount{value: v}, nil
}

func (p PassengerCount) Int() int { return p.value }

type TravelDates struct {
	departure time.Time
	ret       time.Time
}

func NewTravelDates(departure, ret time.Time) (TravelDates, error) {
	if departure.IsZero() || ret.IsZero() {
		return TravelDates{}, ErrInvalidTravelDates
	}
	if ret.Before(departure) {
		return TravelDates{}, ErrInvalidTravelDates
	}
	return TravelDates{departure: departure, ret: ret}, nil
}

func (d TravelDates) Departure() time.Time { return d.departure }
func (d TravelDates) Return() time.Time    { return d.ret }

// ActivityRequest is one caller-supplied activity selection. It never carries a price.
type ActivityRequest struct {
	activityID uuid.UUID
	quantity   int
}

func NewActivityRequest(activityID uuid.UUID, quantity int) (ActivityRequest, error) {
	if activityID == uuid.Nil {
		return ActivityRequest{}, ErrInvalidActivity
	}
	if quantity <= 0 {
		return ActivityRequest{}, ErrInvalidQuantity
	}
	if quantity > MaxActivityQuantity {
		return ActivityRequest{}, ErrQuantityTooLarge
	}
	return ActivityRequest{activityID: activityID, quantity: quantity}, nil
}

func (a ActivityRequest) ActivityID() uuid.UUID { return a.activityID }
func (a ActivityRequest) Quantity() int         { return a.quantity }

// LineItem is an activity priced at booking time. Immutable once created.
type LineItem struct {
	id         uuid.UUID
	activityID uuid.UUID
	quantity   int
	unitPrice  Money
	lineTotal  Money
}

func ReconstructLineItem(id, activityID uuid.UUID, quantity int, unitPrice, lineTotal Money) LineItem {
	return LineItem{
		id:         id,
		activityID: activityID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		lineTotal:  lineTotal,
	}
}

func (l LineItem) ID() uuid.UUID         { return l.id }
func (l LineItem) ActivityID() uuid.UUID { return l.activityID }
func (l LineItem) Quantity() int         { return l.quantity }
func (l LineItem) UnitPrice() Money      { return l.unitPrice }
func (l LineItem) LineTotal() Money      { return l.lineTotal }

// SnapshotTravelDates copies catalog dates without validating them. Routes
// may carry missing dates; reconciliation repairs them after the fact.
func SnapshotTravelDates(departure, ret time.Time) TravelDates {
	return TravelDates{departure: departure, ret: ret}
}

func (d TravelDates) Valid() bool {
	return !d.departure.IsZero() && !d.ret.IsZero() && !d.ret.Before(d.departure)
}
