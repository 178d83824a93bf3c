//go:build unit

package reservation_test

import (
	"math"
	"testing"

	"orbital-booking/internal/domain/reservation"
	"orbital-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPriceCalculator_Calculate(t *testing.T) {
	activityA := uuid.New()
	activityB := uuid.New()

	mustPassengers := func(n int) reservation.PassengerCount {
		p, err := reservation.NewPassengerCount(n)
		require.NoError(t, err)
		return p
	}
	mustRequest := func(id uuid.UUID, qty int) reservation.ActivityRequest {
		r, err := reservation.NewActivityRequest(id, qty)
		require.NoError(t, err)
		return r
	}

	testCases := []struct {
		name               string
		basePrice          int64
		passengers         reservation.PassengerCount
		requests           []reservation.ActivityRequest
		unitPrices         map[uuid.UUID]reservation.Money
		expectedRoute      int64
		expectedActivities int64
		expectedTotal      int64
		expectedLines      int
		errIs              error
	}{
		{
			name:          "route only, two passengers",
			basePrice:     12000000,
			passengers:    mustPassengers(2),
			expectedRoute: 24000000,
			expectedTotal: 24000000,
		},
		{
			name:               "route plus one activity line",
			basePrice:          12000000,
			passengers:         mustPassengers(2),
			requests:           []reservation.ActivityRequest{mustRequest(activityA, 3)},
			unitPrices:         map[uuid.UUID]reservation.Money{activityA: reservation.NewMoney(250000)},
			expectedRoute:      24000000,
			expectedActivities: 750000,
			expectedTotal:      24750000,
			expectedLines:      1,
		},
		{
			name:       "repeated activity keeps separate lines",
			basePrice:  10000,
			passengers: mustPassengers(1),
			requests: []reservation.ActivityRequest{
				mustRequest(activityA, 1),
				mustRequest(activityB, 2),
				mustRequest(activityA, 1),
			},
			unitPrices: map[uuid.UUID]reservation.Money{
				activityA: reservation.NewMoney(1999),
				activityB: reservation.NewMoney(5),
			},
			expectedRoute:      10000,
			expectedActivities: 1999 + 10 + 1999,
			expectedTotal:      10000 + 4008,
			expectedLines:      3,
		},
		{
			name:       "free route",
			basePrice:  0,
			passengers: mustPassengers(3),
		},
		{
			name:       "negative base price",
			basePrice:  -1,
			passengers: mustPassengers(1),
			errIs:      reservation.ErrNegativePrice,
		},
		{
			name:       "zero passengers",
			basePrice:  100,
			passengers: reservation.PassengerCount{},
			errIs:      reservation.ErrInvalidPassengerCount,
		},
		{
			name:       "activity without catalog price",
			basePrice:  100,
			passengers: mustPassengers(1),
			requests:   []reservation.ActivityRequest{mustRequest(activityA, 1)},
			unitPrices: map[uuid.UUID]reservation.Money{},
			errIs:      reservation.ErrActivityNotPriced,
		},
		{
			name:       "activities subtotal beyond the price columns",
			basePrice:  12000000,
			passengers: mustPassengers(2),
			requests: []reservation.ActivityRequest{
				mustRequest(activityA, reservation.MaxActivityQuantity),
				mustRequest(activityB, reservation.MaxActivityQuantity),
			},
			unitPrices: map[uuid.UUID]reservation.Money{
				activityA: reservation.NewMoney(reservation.MaxMoneyCents / 1000),
				activityB: reservation.NewMoney(reservation.MaxMoneyCents / 1000),
			},
			errIs: reservation.ErrAmountOutOfRange,
		},
		{
			name:       "unit price times quantity overflows",
			basePrice:  100,
			passengers: mustPassengers(1),
			requests:   []reservation.ActivityRequest{mustRequest(activityA, 2)},
			unitPrices: map[uuid.UUID]reservation.Money{activityA: reservation.NewMoney(math.MaxInt64/2 + 1)},
			errIs:      reservation.ErrAmountOutOfRange,
		},
		{
			name:       "route subtotal plus activities beyond the price columns",
			basePrice:  reservation.MaxMoneyCents / 2,
			passengers: mustPassengers(2),
			requests:   []reservation.ActivityRequest{mustRequest(activityA, 1)},
			unitPrices: map[uuid.UUID]reservation.Money{activityA: reservation.NewMoney(2)},
			errIs:      reservation.ErrAmountOutOfRange,
		},
		{
			name:       "negative activity price",
			basePrice:  100,
			passengers: mustPassengers(1),
			requests:   []reservation.ActivityRequest{mustRequest(activityA, 1)},
			unitPrices: map[uuid.UUID]reservation.Money{activityA: reservation.NewMoney(-5)},
			errIs:      reservation.ErrNegativePrice,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calc := reservation.NewDefaultPriceCalculator()

			quote, err := calc.Calculate(reservation.NewMoney(tc.basePrice), tc.passengers, tc.requests, tc.unitPrices)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedRoute, quote.RouteSubtotal.Cents())
			assert.Equal(t, tc.expectedActivities, quote.ActivitiesSubtotal.Cents())
			assert.Equal(t, tc.expectedTotal, quote.Total.Cents())
			assert.Equal(t, quote.RouteSubtotal.Add(quote.ActivitiesSubtotal), quote.Total)
			require.Len(t, quote.LineItems, tc.expectedLines)

			var sum int64
			for i, item := range quote.LineItems {
				assert.Equal(t, tc.requests[i].ActivityID(), item.ActivityID())
				expectedLine, err := item.UnitPrice().Mul(item.Quantity())
				require.NoError(t, err)
				assert.Equal(t, expectedLine, item.LineTotal())
				assert.NotEqual(t, uuid.Nil, item.ID())
				sum += item.LineTotal().Cents()
			}
			assert.Equal(t, tc.expectedActivities, sum)
		})
	}
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{cents: 24750000, expected: "247500.00"},
		{cents: 5, expected: "0.05"},
		{cents: 0, expected: "0.00"},
		{cents: -150, expected: "-1.50"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, reservation.NewMoney(tc.cents).String())
		})
	}
	assert.Equal(t, int64(250000), reservation.MoneyFromUnits(2500).Cents())
}

func TestMoney_Mul(t *testing.T) {
	testCases := []struct {
		name     string
		cents    int64
		qty      int
		expected int64
		errIs    error
	}{
		{name: "exact product", cents: 250000, qty: 3, expected: 750000},
		{name: "zero quantity", cents: 250000, qty: 0, expected: 0},
		{name: "upper bound is accepted", cents: reservation.MaxMoneyCents, qty: 1, expected: reservation.MaxMoneyCents},
		{name: "one cent past the bound", cents: reservation.MaxMoneyCents/2 + 1, qty: 2, errIs: reservation.ErrAmountOutOfRange},
		{name: "wrapping product", cents: 25000000, qty: 245172724004621857, errIs: reservation.ErrAmountOutOfRange},
		{name: "negative quantity", cents: 100, qty: -1, errIs: reservation.ErrInvalidQuantity},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := reservation.NewMoney(tc.cents).Mul(tc.qty)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got.Cents())
		})
	}
}

func TestCountLimits(t *testing.T) {
	activityID := uuid.New()

	t.Run("activity quantity", func(t *testing.T) {
		_, err := reservation.NewActivityRequest(activityID, reservation.MaxActivityQuantity)
		require.NoError(t, err)

		_, err = reservation.NewActivityRequest(activityID, reservation.MaxActivityQuantity+1)
		require.ErrorIs(t, err, reservation.ErrQuantityTooLarge)

		_, err = reservation.NewActivityRequest(activityID, 245172724004621857)
		require.ErrorIs(t, err, reservation.ErrQuantityTooLarge)
		assert.Equal(t, errs.ErrInvalidInput, errs.ClassOf(err))
	})

	t.Run("passenger count", func(t *testing.T) {
		_, err := reservation.NewPassengerCount(reservation.MaxPassengerCount)
		require.NoError(t, err)

		_, err = reservation.NewPassengerCount(reservation.MaxPassengerCount + 1)
		require.ErrorIs(t, err, reservation.ErrPassengerCountTooLarge)
		assert.Equal(t, errs.ErrInvalidInput, errs.ClassOf(err))
	})
}
