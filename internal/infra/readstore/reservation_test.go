//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"orbital-booking/internal/domain/reservation"
	"orbital-booking/internal/infra"
	"orbital-booking/internal/infra/readstore"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	"orbital-booking/internal/pkg/pgconv"
	"orbital-booking/internal/usecase/queries"
	"orbital-booking/tests/common/builder"
	readstoremock "orbital-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: header, line items and payments assembled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		row := builder.NewReservationBuilder().
			WithPassengers(2).
			WithActivity(uuid.New(), 3, builder.DefaultActivityPriceCents).
			BuildInfra()
		item := sqlc.ReservationLineItems{
			ID:            uuid.New(),
			ReservationID: row.ID,
			ActivityID:    uuid.New(),
			Quantity:      3,
			UnitPrice:     pgconv.CentsToNumeric(250000),
			LineTotal:     pgconv.CentsToNumeric(750000),
		}
		payment := sqlc.Payments{
			ID:            uuid.New(),
			ReservationID: row.ID,
			Amount:        pgconv.CentsToNumeric(24750000),
			Method:        "card",
			Status:        "completado",
			CreatedAt:     pgtype.Timestamptz{Time: time.Now(), Valid: true},
		}

		mockQueries.EXPECT().GetReservation(ctx, gomock.Any(), row.ID).Return(row, nil)
		mockQueries.EXPECT().ListLineItemsByReservation(ctx, gomock.Any(), row.ID).Return([]sqlc.ReservationLineItems{item}, nil)
		mockQueries.EXPECT().ListPaymentsByReservation(ctx, gomock.Any(), row.ID).Return([]sqlc.Payments{payment}, nil)

		view, err := store.FindByID(ctx, row.ID)
		require.NoError(t, err)

		assert.Equal(t, int64(24000000), view.RouteSubtotalCents)
		assert.Equal(t, int64(750000), view.ActivitiesSubtotalCents)
		assert.Equal(t, int64(24750000), view.TotalCents)
		require.Len(t, view.LineItems, 1)
		assert.Equal(t, int32(3), view.LineItems[0].Quantity)
		require.Len(t, view.Payments, 1)
		assert.Equal(t, "completado", view.Payments[0].Status)
	})

	t.Run("error: reservation not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		id := uuid.New()
		mockQueries.EXPECT().GetReservation(ctx, gomock.Any(), id).Return(sqlc.Reservations{}, pgx.ErrNoRows)

		view, err := store.FindByID(ctx, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, view)
	})
}

// =============================================================================
// FindByUser Tests
// =============================================================================

func TestReservationReadStore_FindByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	afterID := uuid.New()
	afterTime := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		after         *queries.Keyset
		setupMock     func(*readstoremock.MockReservationViewQueries)
		expectedCount int
		expectedError bool
	}{
		{
			name: "first page: keyset left null",
			setupMock: func(mock *readstoremock.MockReservationViewQueries) {
				mock.EXPECT().ListReservationsByUser(ctx, gomock.Any(), gomock.Cond(func(arg sqlc.ListReservationsByUserParams) bool {
					return arg.UserID == userID && !arg.AfterCreatedAt.Valid && !arg.AfterID.Valid && arg.Lim == 21
				})).Return([]sqlc.Reservations{
					builder.NewReservationBuilder().WithUserID(userID).BuildInfra(),
					builder.NewReservationBuilder().WithUserID(userID).BuildInfra(),
				}, nil)
			},
			expectedCount: 2,
		},
		{
			name:  "next page: keyset passed through",
			after: &queries.Keyset{CreatedAt: afterTime, ID: afterID},
			setupMock: func(mock *readstoremock.MockReservationViewQueries) {
				mock.EXPECT().ListReservationsByUser(ctx, gomock.Any(), gomock.Cond(func(arg sqlc.ListReservationsByUserParams) bool {
					return arg.AfterCreatedAt.Valid && arg.AfterCreatedAt.Time.Equal(afterTime) &&
						arg.AfterID.Valid && arg.AfterID.Bytes == afterID
				})).Return([]sqlc.Reservations{}, nil)
			},
			expectedCount: 0,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockReservationViewQueries) {
				mock.EXPECT().ListReservationsByUser(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
			store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries)

			result, actualError := store.FindByUser(ctx, userID, tc.after, 21)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, infra.KindDBFailure))
				return
			}
			require.NoError(t, actualError)
			assert.Len(t, result, tc.expectedCount)
		})
	}
}

// =============================================================================
// ReviewContext Tests
// =============================================================================

func TestReservationReadStore_ReviewContext(t *testing.T) {
	ctx := context.Background()
	resID := uuid.New()

	t.Run("success: status parsed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		row := sqlc.GetReservationReviewContextRow{UserID: uuid.New(), Status: "completada", DestinationID: uuid.New()}
		mockQueries.EXPECT().GetReservationReviewContext(ctx, gomock.Any(), resID).Return(row, nil)

		snap, err := store.ReviewContext(ctx, resID)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCompleted, snap.Status)
		assert.Equal(t, row.DestinationID, snap.DestinationID)
	})

	t.Run("error: reservation not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetReservationReviewContext(ctx, gomock.Any(), resID).Return(sqlc.GetReservationReviewContextRow{}, pgx.ErrNoRows)

		_, err := store.ReviewContext(ctx, resID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
