//go:build unit

package reconcile_test

import (
	"encoding/json"
	"testing"
	"time"

	"orbital-booking/internal/domain/reservation"
	"orbital-booking/internal/usecase/reconcile"
	"orbital-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDateRepair(t *testing.T) {
	fallback := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	dep := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		current    reservation.TravelDates
		route      reservation.TravelDates
		wantSource reconcile.DateSource
		wantDep    time.Time
		wantRet    time.Time
	}{
		{
			name:       "route dates win when valid",
			current:    reservation.SnapshotTravelDates(time.Time{}, time.Time{}),
			route:      reservation.SnapshotTravelDates(dep, ret),
			wantSource: reconcile.DateSourceRoute,
			wantDep:    dep,
			wantRet:    ret,
		},
		{
			name:       "inverted reservation dates fixed from route",
			current:    reservation.SnapshotTravelDates(ret, dep),
			route:      reservation.SnapshotTravelDates(dep, ret),
			wantSource: reconcile.DateSourceRoute,
			wantDep:    dep,
			wantRet:    ret,
		},
		{
			name:       "surviving departure reused for both ends",
			current:    reservation.SnapshotTravelDates(dep, time.Time{}),
			route:      reservation.SnapshotTravelDates(time.Time{}, time.Time{}),
			wantSource: reconcile.DateSourceExisting,
			wantDep:    dep,
			wantRet:    dep,
		},
		{
			name:       "nothing usable falls back to default",
			current:    reservation.SnapshotTravelDates(time.Time{}, time.Time{}),
			route:      reservation.SnapshotTravelDates(ret, dep),
			wantSource: reconcile.DateSourceDefault,
			wantDep:    fallback,
			wantRet:    fallback,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id := uuid.New()
			repair := reconcile.PlanDateRepair(shared.InvalidDates{ReservationID: id, Current: tc.current, Route: tc.route}, fallback)

			assert.Equal(t, id, repair.ReservationID)
			assert.Equal(t, tc.wantSource, repair.Source)
			assert.Equal(t, tc.wantDep, repair.Dates.Departure())
			assert.Equal(t, tc.wantRet, repair.Dates.Return())
			assert.True(t, repair.Dates.Valid())
		})
	}
}

func TestDateRepair_MarshalJSON(t *testing.T) {
	day := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	repair := reconcile.DateRepair{
		ReservationID: uuid.New(),
		Dates:         reservation.SnapshotTravelDates(day, day),
		Source:        reconcile.DateSourceDefault,
	}

	b, err := json.Marshal(repair)
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "2023-01-01", got["departure_date"])
	assert.Equal(t, "2023-01-01", got["return_date"])
	assert.Equal(t, "default", got["source"])
	assert.Equal(t, repair.ReservationID.String(), got["reservation_id"])
}
