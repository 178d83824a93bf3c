//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"orbital-booking/internal/domain/reservation"
	"orbital-booking/internal/pkg/errs"
	"orbital-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(reservation.Reservation{}, reservation.Money{}, reservation.PassengerCount{}, reservation.TravelDates{}, reservation.LineItem{}),
	cmpopts.IgnoreFields(reservation.Reservation{}, "id"),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservation(t *testing.T) {
	t.Run("route only booking", func(t *testing.T) {
		b := builder.NewReservationBuilder().WithPassengers(2)

		actual, err := b.BuildDomain()
		require.NoError(t, err)

		expected := reservation.ReconstructReservation(
			uuid.Nil, b.UserID, b.RouteID, b.ShipID, 2,
			reservation.StatusPending,
			reservation.NewMoney(24000000), reservation.NewMoney(0), reservation.NewMoney(24000000),
			reservation.SnapshotTravelDates(b.DepartureDate, b.ReturnDate),
			nil, b.Now, b.Now,
		)
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Reservation mismatch (-want +got):\n%s", diff)
		}
		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsOwnedBy(b.UserID))
		assert.False(t, actual.IsOwnedBy(uuid.New()))
	})

	t.Run("booking with activity", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().
			WithPassengers(2).
			WithActivity(uuid.New(), 3, 250000).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(24000000), actual.RouteSubtotal().Cents())
		assert.Equal(t, int64(750000), actual.ActivitiesSubtotal().Cents())
		assert.Equal(t, "247500.00", actual.Total().String())
		require.Len(t, actual.LineItems(), 1)
		assert.Equal(t, 3, actual.LineItems()[0].Quantity())
	})

	t.Run("missing route dates are snapshotted as is", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().WithTravelDates(time.Time{}, time.Time{}).BuildDomain()
		require.NoError(t, err)
		assert.False(t, actual.TravelDates().Valid())
	})

	t.Run("request validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero passengers",
				mutate: func(b *builder.ReservationBuilder) { b.WithPassengers(0) },
				errIs:  reservation.ErrInvalidPassengerCount,
			},
			{
				name:   "negative passengers",
				mutate: func(b *builder.ReservationBuilder) { b.WithPassengers(-3) },
				errIs:  reservation.ErrInvalidPassengerCount,
			},
			{
				name:   "zero activity quantity",
				mutate: func(b *builder.ReservationBuilder) { b.WithActivity(uuid.New(), 0, 100) },
				errIs:  reservation.ErrInvalidQuantity,
			},
			{
				name:   "activity without id",
				mutate: func(b *builder.ReservationBuilder) { b.WithActivity(uuid.Nil, 1, 100) },
				errIs:  reservation.ErrInvalidActivity,
			},
			{
				name:   "negative base price",
				mutate: func(b *builder.ReservationBuilder) { b.WithBasePrice(-100) },
				errIs:  reservation.ErrNegativePrice,
			},
			{
				name:   "forty passengers",
				mutate: func(b *builder.ReservationBuilder) { b.WithPassengers(40) },
			},
		})
	})

	t.Run("validation errors are invalid input", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().WithPassengers(0).BuildDomain()
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("inconsistent quote is rejected", func(t *testing.T) {
		p, err := reservation.NewPassengerCount(1)
		require.NoError(t, err)

		_, err = reservation.NewReservation(reservation.RouteSpec{ID: uuid.New()}, uuid.New(), p, reservation.Quote{
			RouteSubtotal:      reservation.NewMoney(100),
			ActivitiesSubtotal: reservation.NewMoney(50),
			Total:              reservation.NewMoney(100),
		}, time.Now())
		require.ErrorIs(t, err, reservation.ErrInconsistentQuote)
	})
}

func TestReservation_Transitions(t *testing.T) {
	later := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		from     reservation.Status
		apply    func(*reservation.Reservation, time.Time) error
		expected reservation.Status
		errIs    error
	}{
		{name: "confirm pending", from: reservation.StatusPending, apply: (*reservation.Reservation).Confirm, expected: reservation.StatusConfirmed},
		{name: "cancel pending", from: reservation.StatusPending, apply: (*reservation.Reservation).Cancel, expected: reservation.StatusCanceled},
		{name: "cancel confirmed", from: reservation.StatusConfirmed, apply: (*reservation.Reservation).Cancel, expected: reservation.StatusCanceled},
		{name: "complete confirmed", from: reservation.StatusConfirmed, apply: (*reservation.Reservation).Complete, expected: reservation.StatusCompleted},
		{name: "complete pending", from: reservation.StatusPending, apply: (*reservation.Reservation).Complete, errIs: reservation.ErrIllegalTransition},
		{name: "confirm confirmed", from: reservation.StatusConfirmed, apply: (*reservation.Reservation).Confirm, errIs: reservation.ErrIllegalTransition},
		{name: "cancel canceled", from: reservation.StatusCanceled, apply: (*reservation.Reservation).Cancel, errIs: reservation.ErrAlreadyCanceled},
		{name: "cancel completed", from: reservation.StatusCompleted, apply: (*reservation.Reservation).Cancel, errIs: reservation.ErrReservationCompleted},
		{name: "confirm canceled", from: reservation.StatusCanceled, apply: (*reservation.Reservation).Confirm, errIs: reservation.ErrAlreadyCanceled},
		{name: "complete completed", from: reservation.StatusCompleted, apply: (*reservation.Reservation).Complete, errIs: reservation.ErrReservationCompleted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := builder.NewReservationBuilder().WithStatus(tc.from).BuildDomain()
			require.NoError(t, err)
			before := res.UpdatedAt()

			err = tc.apply(res, later)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.from, res.Status())
				assert.Equal(t, before, res.UpdatedAt())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, res.Status())
			assert.Equal(t, later, res.UpdatedAt())
		})
	}

	t.Run("terminal errors carry the terminal class", func(t *testing.T) {
		assert.ErrorIs(t, reservation.ErrAlreadyCanceled, errs.ErrAlreadyTerminal)
		assert.ErrorIs(t, reservation.ErrReservationCompleted, errs.ErrAlreadyTerminal)
		assert.ErrorIs(t, reservation.ErrIllegalTransition, errs.ErrInvalidInput)
	})
}

func TestStatus(t *testing.T) {
	assert.ElementsMatch(t, []reservation.Status{reservation.StatusPending, reservation.StatusConfirmed}, reservation.ActiveStatuses())
	for _, s := range reservation.ActiveStatuses() {
		assert.True(t, s.HoldsSeats())
		assert.False(t, s.IsTerminal())
	}
	assert.False(t, reservation.StatusCanceled.HoldsSeats())
	assert.True(t, reservation.StatusCompleted.IsTerminal())

	parsed, err := reservation.ParseStatus("confirmada")
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusConfirmed, parsed)

	_, err = reservation.ParseStatus("confirmed")
	require.ErrorIs(t, err, reservation.ErrInvalidStatus)
}

func TestTravelDates(t *testing.T) {
	dep := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := reservation.NewTravelDates(dep, dep.AddDate(0, 0, -1))
	require.ErrorIs(t, err, reservation.ErrInvalidTravelDates)

	_, err = reservation.NewTravelDates(time.Time{}, dep)
	require.ErrorIs(t, err, reservation.ErrInvalidTravelDates)

	same, err := reservation.NewTravelDates(dep, dep)
	require.NoError(t, err)
	assert.True(t, same.Valid())

	assert.False(t, reservation.SnapshotTravelDates(dep, dep.AddDate(0, 0, -1)).Valid())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
