//go:build unit

package readstore_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"orbital-booking/internal/infra"
	"orbital-booking/internal/infra/readstore"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
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
// FindByDestination Tests
// =============================================================================

func TestReviewReadStore_FindByDestination(t *testing.T) {
	ctx := context.Background()
	destinationID := uuid.New()
	minRating := 4

	testCases := []struct {
		name          string
		minRating     *int
		after         *queries.Keyset
		setupMock     func(*readstoremock.MockReviewViewQueries)
		expectedCount int
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "no filters - all results",
			setupMock: func(mock *readstoremock.MockReviewViewQueries) {
				mock.EXPECT().ListReviewsByDestination(ctx, gomock.Any(), gomock.Cond(func(arg sqlc.ListReviewsByDestinationParams) bool {
					return arg.DestinationID == destinationID && !arg.MinRating.Valid && !arg.AfterID.Valid
				})).Return([]sqlc.ListReviewsByDestinationRow{
					builder.NewReviewBuilder().WithDestinationID(destinationID).BuildListRow(),
					builder.NewReviewBuilder().WithDestinationID(destinationID).AsPoorRating().BuildListRow(),
				}, nil)
			},
			expectedCount: 2,
		},
		{
			name:      "min rating filter is passed as int4",
			minRating: &minRating,
			setupMock: func(mock *readstoremock.MockReviewViewQueries) {
				mock.EXPECT().ListReviewsByDestination(ctx, gomock.Any(), gomock.Cond(func(arg sqlc.ListReviewsByDestinationParams) bool {
					return arg.MinRating.Valid && arg.MinRating.Int32 == 4
				})).Return([]sqlc.ListReviewsByDestinationRow{
					builder.NewReviewBuilder().WithDestinationID(destinationID).BuildListRow(),
				}, nil)
			},
			expectedCount: 1,
		},
		{
			name:  "keyset continues after the cursor row",
			after: &queries.Keyset{CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), ID: uuid.New()},
			setupMock: func(mock *readstoremock.MockReviewViewQueries) {
				mock.EXPECT().ListReviewsByDestination(ctx, gomock.Any(), gomock.Cond(func(arg sqlc.ListReviewsByDestinationParams) bool {
					return arg.AfterCreatedAt.Valid && arg.AfterID.Valid
				})).Return([]sqlc.ListReviewsByDestinationRow{}, nil)
			},
			expectedCount: 0,
		},
		{
			name: "database error",
			setupMock: func(mock *readstoremock.MockReviewViewQueries) {
				mock.EXPECT().ListReviewsByDestination(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReviewViewQueries(ctrl)
			store := readstore.NewReviewReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries)

			result, actualError := store.FindByDestination(ctx, destinationID, tc.minRating, tc.after, 21)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, actualError)
			assert.Len(t, result, tc.expectedCount)
		})
	}
}

// =============================================================================
// GetDestinationRatingStats Tests
// =============================================================================

func TestReviewReadStore_GetDestinationRatingStats(t *testing.T) {
	ctx := context.Background()
	destinationID := uuid.New()

	t.Run("success: stats row converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReviewViewQueries(ctrl)
		store := readstore.NewReviewReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetDestinationRatingStats(ctx, gomock.Any(), destinationID).Return(sqlc.DestinationRatingStats{
			DestinationID: destinationID,
			TotalReviews:  2,
			AverageRating: pgtype.Numeric{Int: big.NewInt(45), Exp: -1, Valid: true},
			Rating4Count:  1,
			Rating5Count:  1,
		}, nil)

		stats, err := store.GetDestinationRatingStats(ctx, destinationID)
		require.NoError(t, err)
		assert.Equal(t, int32(2), stats.TotalReviews)
		assert.InDelta(t, 4.5, stats.AverageRating, 0.0001)
	})

	t.Run("no reviews yet: zero stats instead of error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReviewViewQueries(ctrl)
		store := readstore.NewReviewReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetDestinationRatingStats(ctx, gomock.Any(), destinationID).Return(sqlc.DestinationRatingStats{}, pgx.ErrNoRows)

		stats, err := store.GetDestinationRatingStats(ctx, destinationID)
		require.NoError(t, err)
		assert.Equal(t, &queries.DestinationRatingStats{DestinationID: destinationID}, stats)
	})
}
