//go:build unit

package reconcile_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"orbital-booking/internal/pkg/clock"
	"orbital-booking/internal/pkg/config"
	"orbital-booking/internal/usecase/reconcile"
	"orbital-booking/internal/usecase/shared"
	reconcilemock "orbital-booking/tests/mock/reconcile"
	sharedmock "orbital-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 3, 1, 3, 0, 0, 0, time.UTC)

type guardFixture struct {
	uow    *sharedmock.MockUnitOfWork
	tx     *sharedmock.MockTx
	repo   *sharedmock.MockReconciliationRepository
	locker *reconcilemock.MockRouteLocker
}

func newGuardFixture(t *testing.T) *guardFixture {
	ctrl := gomock.NewController(t)
	f := &guardFixture{
		uow:    sharedmock.NewMockUnitOfWork(ctrl),
		tx:     sharedmock.NewMockTx(ctrl),
		repo:   sharedmock.NewMockReconciliationRepository(ctrl),
		locker: reconcilemock.NewMockRouteLocker(ctrl),
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Reconciliation().Return(f.repo).AnyTimes()
	return f
}

func (f *guardFixture) guard(fix bool) *reconcile.Guard {
	return reconcile.NewGuard(f.uow, f.locker, clock.NewMockClock(now), config.ReconcileConfig{
		Fix:         fix,
		Concurrency: 2,
		LockTTL:     time.Minute,
		DefaultDate: "2023-01-01",
	})
}

func (f *guardFixture) expectLock(routeID uuid.UUID, acquired bool) {
	released := func(context.Context) {}
	f.locker.EXPECT().TryLock(gomock.Any(), routeID, time.Minute).Return(released, acquired, nil)
}

// =============================================================================
// ReconcileRoute Tests
// =============================================================================

func TestGuard_ReconcileRoute(t *testing.T) {
	ctx := context.Background()
	runID := uuid.New()

	testCases := []struct {
		name          string
		fix           bool
		total         int
		stored        int
		active        int
		expectSet     bool
		expectFinding shared.FindingKind
		expected      *reconcile.RouteDrift
	}{
		{
			name:   "counter agrees with active reservations",
			total:  40,
			stored: 38,
			active: 2,
		},
		{
			name:          "drift reported without fix",
			total:         40,
			stored:        30,
			active:        2,
			expectFinding: shared.FindingSeatDrift,
			expected:      &reconcile.RouteDrift{TotalSeats: 40, Stored: 30, Expected: 38},
		},
		{
			name:          "drift corrected with fix",
			fix:           true,
			total:         40,
			stored:        30,
			active:        2,
			expectSet:     true,
			expectFinding: shared.FindingSeatDrift,
			expected:      &reconcile.RouteDrift{TotalSeats: 40, Stored: 30, Expected: 38, Corrected: true},
		},
		{
			name:          "overbooked route clamped to zero",
			fix:           true,
			total:         40,
			stored:        5,
			active:        42,
			expectSet:     true,
			expectFinding: shared.FindingOverbooked,
			expected:      &reconcile.RouteDrift{TotalSeats: 40, Stored: 5, Expected: 0, Overbooked: true, Corrected: true},
		},
		{
			name:          "overbooked route already at zero is flagged but not rewritten",
			fix:           true,
			total:         40,
			stored:        0,
			active:        41,
			expectFinding: shared.FindingOverbooked,
			expected:      &reconcile.RouteDrift{TotalSeats: 40, Stored: 0, Expected: 0, Overbooked: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newGuardFixture(t)
			routeID := uuid.New()

			f.expectLock(routeID, true)
			f.repo.EXPECT().LockRouteSeats(gomock.Any(), gomock.Any(), routeID).Return(tc.total, tc.stored, nil)
			f.repo.EXPECT().SumActivePassengers(gomock.Any(), gomock.Any(), routeID).Return(tc.active, nil)
			if tc.expectSet {
				f.repo.EXPECT().SetAvailableSeats(gomock.Any(), gomock.Any(), routeID, tc.expected.Expected).Return(nil)
			}
			if tc.expectFinding != "" {
				f.repo.EXPECT().RecordFinding(gomock.Any(), gomock.Any(), gomock.Cond(func(fd shared.Finding) bool {
					return fd.RunID == runID && fd.Kind == tc.expectFinding && fd.SubjectID == routeID && fd.Corrected == tc.expected.Corrected
				})).Return(nil)
			}

			drift, err := f.guard(tc.fix).ReconcileRoute(ctx, runID, routeID)
			require.NoError(t, err)

			if tc.expected == nil {
				assert.Nil(t, drift)
				return
			}
			tc.expected.RouteID = routeID
			assert.Equal(t, tc.expected, drift)
		})
	}

	t.Run("busy route is skipped", func(t *testing.T) {
		f := newGuardFixture(t)
		routeID := uuid.New()
		f.expectLock(routeID, false)

		drift, err := f.guard(true).ReconcileRoute(ctx, runID, routeID)
		assert.ErrorIs(t, err, reconcile.ErrRouteBusy)
		assert.Nil(t, drift)
	})

	t.Run("concurrent run does not reuse another run's result", func(t *testing.T) {
		f := newGuardFixture(t)
		routeID := uuid.New()
		firstRun, secondRun := uuid.New(), uuid.New()

		entered := make(chan struct{})
		proceed := make(chan struct{})
		var calls atomic.Int32
		f.locker.EXPECT().TryLock(gomock.Any(), routeID, time.Minute).
			DoAndReturn(func(context.Context, uuid.UUID, time.Duration) (func(context.Context), bool, error) {
				if calls.Add(1) == 1 {
					close(entered)
					<-proceed
					return func(context.Context) {}, true, nil
				}
				// Held by the first run when the second one does not join its flight.
				return nil, false, nil
			}).MinTimes(1).MaxTimes(2)
		f.repo.EXPECT().LockRouteSeats(gomock.Any(), gomock.Any(), routeID).Return(40, 30, nil)
		f.repo.EXPECT().SumActivePassengers(gomock.Any(), gomock.Any(), routeID).Return(2, nil)
		f.repo.EXPECT().RecordFinding(gomock.Any(), gomock.Any(), gomock.Cond(func(fd shared.Finding) bool {
			return fd.RunID == firstRun
		})).Return(nil).Times(1)

		guard := f.guard(false)
		type outcome struct {
			drift *reconcile.RouteDrift
			err   error
		}
		first := make(chan outcome, 1)
		second := make(chan outcome, 1)

		go func() {
			drift, err := guard.ReconcileRoute(ctx, firstRun, routeID)
			first <- outcome{drift, err}
		}()
		<-entered
		go func() {
			drift, err := guard.ReconcileRoute(ctx, secondRun, routeID)
			second <- outcome{drift, err}
		}()
		time.Sleep(50 * time.Millisecond)
		close(proceed)

		got := <-first
		require.NoError(t, got.err)
		require.NotNil(t, got.drift)
		assert.Equal(t, 38, got.drift.Expected)

		got = <-second
		assert.ErrorIs(t, got.err, reconcile.ErrRouteBusy)
		assert.Nil(t, got.drift)
	})

	t.Run("lock backend failure", func(t *testing.T) {
		f := newGuardFixture(t)
		routeID := uuid.New()
		boom := errors.New("redis unavailable")
		f.locker.EXPECT().TryLock(gomock.Any(), routeID, time.Minute).Return(nil, false, boom)

		_, err := f.guard(true).ReconcileRoute(ctx, runID, routeID)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("lock released after the pass", func(t *testing.T) {
		f := newGuardFixture(t)
		routeID := uuid.New()
		released := false
		f.locker.EXPECT().TryLock(gomock.Any(), routeID, time.Minute).
			Return(func(context.Context) { released = true }, true, nil)
		f.repo.EXPECT().LockRouteSeats(gomock.Any(), gomock.Any(), routeID).Return(40, 40, nil)
		f.repo.EXPECT().SumActivePassengers(gomock.Any(), gomock.Any(), routeID).Return(0, nil)

		_, err := f.guard(false).ReconcileRoute(ctx, runID, routeID)
		require.NoError(t, err)
		assert.True(t, released)
	})
}

// =============================================================================
// Run Tests
// =============================================================================

func TestGuard_Run(t *testing.T) {
	ctx := context.Background()
	f := newGuardFixture(t)

	clean, drifting, busy, broken := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	orphanRes, missingRoute := uuid.New(), uuid.New()
	badDates := uuid.New()

	f.repo.EXPECT().ListRouteIDs(gomock.Any(), gomock.Any()).Return([]uuid.UUID{clean, drifting, busy, broken}, nil)

	f.expectLock(clean, true)
	f.repo.EXPECT().LockRouteSeats(gomock.Any(), gomock.Any(), clean).Return(40, 40, nil)
	f.repo.EXPECT().SumActivePassengers(gomock.Any(), gomock.Any(), clean).Return(0, nil)

	f.expectLock(drifting, true)
	f.repo.EXPECT().LockRouteSeats(gomock.Any(), gomock.Any(), drifting).Return(40, 30, nil)
	f.repo.EXPECT().SumActivePassengers(gomock.Any(), gomock.Any(), drifting).Return(2, nil)
	f.repo.EXPECT().SetAvailableSeats(gomock.Any(), gomock.Any(), drifting, 38).Return(nil)

	f.expectLock(busy, false)

	f.expectLock(broken, true)
	f.repo.EXPECT().LockRouteSeats(gomock.Any(), gomock.Any(), broken).Return(0, 0, errors.New("statement timeout"))

	f.repo.EXPECT().ListOrphans(gomock.Any(), gomock.Any()).Return([]shared.Orphan{
		{Kind: shared.OrphanReservationMissingRoute, SubjectID: orphanRes, ReferenceID: missingRoute},
	}, nil)

	f.repo.EXPECT().ListInvalidDates(gomock.Any(), gomock.Any()).Return([]shared.InvalidDates{
		{ReservationID: badDates, RouteID: uuid.New()},
	}, nil)
	f.repo.EXPECT().UpdateTravelDates(gomock.Any(), gomock.Any(), badDates, gomock.Any()).Return(nil)

	var findings []shared.Finding
	f.repo.EXPECT().RecordFinding(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, fd shared.Finding) error {
			findings = append(findings, fd)
			return nil
		}).Times(3)

	report, err := f.guard(true).Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.RoutesScanned)
	assert.Equal(t, 1, report.RoutesSkipped)
	assert.Equal(t, 1, report.RoutesFailed)
	require.Len(t, report.Drifts, 1)
	assert.Equal(t, drifting, report.Drifts[0].RouteID)
	assert.True(t, report.Drifts[0].Corrected)
	require.Len(t, report.Orphans, 1)
	require.Len(t, report.DateRepairs, 1)
	assert.Equal(t, reconcile.DateSourceDefault, report.DateRepairs[0].Source)
	assert.Equal(t, now, report.StartedAt)

	kinds := make(map[shared.FindingKind]int)
	for _, fd := range findings {
		assert.Equal(t, report.RunID, fd.RunID)
		kinds[fd.Kind]++
	}
	assert.Equal(t, map[shared.FindingKind]int{
		shared.FindingSeatDrift:  1,
		shared.FindingOrphan:     1,
		shared.FindingDateRepair: 1,
	}, kinds)
}

func TestGuard_RunStopsWhenRoutesCannotBeListed(t *testing.T) {
	f := newGuardFixture(t)
	boom := errors.New("connection refused")
	f.repo.EXPECT().ListRouteIDs(gomock.Any(), gomock.Any()).Return(nil, boom)

	report, err := f.guard(false).Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, report)
}
