//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"orbital-booking/internal/infra"
	"orbital-booking/internal/infra/repository"
	"orbital-booking/internal/pkg/errs"
	repositorymock "orbital-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// RecalcDestinationRatingStats Tests
// =============================================================================

func TestRatingStatsRepository_RecalcDestinationRatingStats(t *testing.T) {
	ctx := context.Background()
	destinationID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRatingStatsQueries, uuid.UUID, *mockDBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: rating stats recalculated successfully",
			setupMock: func(mock *repositorymock.MockRatingStatsQueries, destID uuid.UUID, tx *mockDBTX) {
				mock.EXPECT().RecalcDestinationRatingStats(ctx, tx, destID).Return(nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockRatingStatsQueries, destID uuid.UUID, tx *mockDBTX) {
				mock.EXPECT().RecalcDestinationRatingStats(ctx, tx, destID).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRatingStatsQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRatingStatsRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, destinationID, mockDB)

			actualError := repo.RecalcDestinationRatingStats(ctx, mockDB, destinationID)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.ErrorIs(t, actualError, errs.ErrStorageFailure)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}
