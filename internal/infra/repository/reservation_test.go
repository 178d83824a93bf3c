//go:build unit

package repository_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"orbital-booking/internal/domain/reservation"
	"orbital-booking/internal/infra"
	"orbital-booking/internal/infra/repository"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	"orbital-booking/internal/pkg/pgconv"
	"orbital-booking/tests/common/builder"
	repositorymock "orbital-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Reservation Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReservationWriteQueries, *reservation.Reservation, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: header and every line item written",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Cond(func(arg sqlc.CreateReservationParams) bool {
					total, err := pgconv.NumericToCents(arg.TotalPrice)
					return err == nil && arg.ID == res.ID() && total == res.Total().Cents() && arg.Status == "pendiente"
				})).Return(nil)
				mock.EXPECT().CreateReservationLineItem(ctx, tx, gomock.Cond(func(arg sqlc.CreateReservationLineItemParams) bool {
					return arg.ReservationID == res.ID()
				})).Return(nil).Times(2)
			},
		},
		{
			name: "error: header insert fails",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: line item insert fails",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().CreateReservationLineItem(ctx, tx, gomock.Any()).Return(errors.New("disk full"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res, err := builder.NewReservationBuilder().
				WithPassengers(2).
				WithActivity(uuid.New(), 3, builder.DefaultActivityPriceCents).
				WithActivity(uuid.New(), 1, 1000).
				BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, res, mockDB)

			actualError := repo.Create(ctx, mockDB, res)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestReservationRepository_Create_QuantityOutsideInt4(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	line := reservation.ReconstructLineItem(uuid.New(), uuid.New(), math.MaxInt32+1, reservation.NewMoney(1), reservation.NewMoney(math.MaxInt32+1))
	res := reservation.ReconstructReservation(
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		1,
		reservation.StatusPending,
		reservation.NewMoney(100), line.LineTotal(), reservation.NewMoney(100).Add(line.LineTotal()),
		reservation.TravelDates{},
		[]reservation.LineItem{line},
		time.Now(), time.Now(),
	)

	// No insert is expected: the quantity must fail conversion instead of being clamped.
	err := repo.Create(ctx, mockDB, res)

	require.Error(t, err)
	assert.ErrorIs(t, err, pgconv.ErrInt32Range)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

// =============================================================================
// LoadForUpdate Tests
// =============================================================================

func TestReservationRepository_LoadForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row and line items reconstructed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		row := builder.NewReservationBuilder().WithPassengers(2).WithStatus(reservation.StatusConfirmed).BuildInfra()
		item := sqlc.ReservationLineItems{
			ID:            uuid.New(),
			ReservationID: row.ID,
			ActivityID:    uuid.New(),
			Quantity:      3,
			UnitPrice:     pgconv.CentsToNumeric(250000),
			LineTotal:     pgconv.CentsToNumeric(750000),
		}
		mockQueries.EXPECT().GetReservationForUpdate(ctx, mockDB, row.ID).Return(row, nil)
		mockQueries.EXPECT().ListLineItemsByReservation(ctx, mockDB, row.ID).Return([]sqlc.ReservationLineItems{item}, nil)

		res, err := repo.LoadForUpdate(ctx, mockDB, row.ID)
		require.NoError(t, err)

		assert.Equal(t, row.ID, res.ID())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, 2, res.Passengers().Int())
		assert.Equal(t, int64(24000000), res.Total().Cents())
		require.Len(t, res.LineItems(), 1)
		assert.Equal(t, int64(750000), res.LineItems()[0].LineTotal().Cents())
	})

	t.Run("error: reservation not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().GetReservationForUpdate(ctx, mockDB, id).Return(sqlc.Reservations{}, pgx.ErrNoRows)

		_, err := repo.LoadForUpdate(ctx, mockDB, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: unknown status in row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		row := builder.NewReservationBuilder().BuildInfra()
		row.Status = "archived"
		mockQueries.EXPECT().GetReservationForUpdate(ctx, mockDB, row.ID).Return(row, nil)
		mockQueries.EXPECT().ListLineItemsByReservation(ctx, mockDB, row.ID).Return(nil, nil)

		_, err := repo.LoadForUpdate(ctx, mockDB, row.ID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// UpdateStatus Tests
// =============================================================================

func TestReservationRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expectedError bool
		errIs         error
	}{
		{name: "success: one row moved", affected: 1},
		{name: "error: status changed underneath", affected: 0, expectedError: true, errIs: repository.ErrStaleReservation},
		{name: "error: database error occurs", queryErr: errors.New("timeout"), expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res, err := builder.NewReservationBuilder().BuildDomain()
			require.NoError(t, err)
			require.NoError(t, res.Cancel(res.CreatedAt()))

			mockQueries.EXPECT().UpdateReservationStatus(ctx, mockDB, gomock.Cond(func(arg sqlc.UpdateReservationStatusParams) bool {
				return arg.ID == res.ID() && arg.FromStatus == "pendiente" && arg.ToStatus == "cancelada"
			})).Return(tc.affected, tc.queryErr)

			actualError := repo.UpdateStatus(ctx, mockDB, res, reservation.StatusPending)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.errIs != nil {
					assert.ErrorIs(t, actualError, tc.errIs)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}
