//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"orbital-booking/internal/infra"
	"orbital-booking/internal/infra/repository"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	repositorymock "orbital-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentRepository_FlagRefunds(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()
	refundParams := sqlc.TransitionPaymentStatusParams{
		ToStatus:      "reembolsado",
		ReservationID: reservationID,
		FromStatus:    "completado",
	}

	t.Run("returns flagged payment ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		tx := &mockDBTX{}
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		mockQueries.EXPECT().TransitionPaymentStatus(ctx, tx, refundParams).Return(ids, nil)

		got, err := repository.NewPaymentRepository(mockQueries, tx).FlagRefunds(ctx, tx, reservationID)

		require.NoError(t, err)
		assert.Equal(t, ids, got)
	})

	t.Run("no completed payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		tx := &mockDBTX{}
		mockQueries.EXPECT().TransitionPaymentStatus(ctx, tx, refundParams).Return(nil, nil)

		got, err := repository.NewPaymentRepository(mockQueries, tx).FlagRefunds(ctx, tx, reservationID)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("update failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		tx := &mockDBTX{}
		mockQueries.EXPECT().TransitionPaymentStatus(ctx, tx, refundParams).Return(nil, errors.New("lock timeout"))

		_, err := repository.NewPaymentRepository(mockQueries, tx).FlagRefunds(ctx, tx, reservationID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
