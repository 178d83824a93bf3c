//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"orbital-booking/internal/infra"
	"orbital-booking/internal/infra/readstore"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	readstoremock "orbital-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationReadStore_GetPendingJobs(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("rows become job views", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockNotificationReadQueries(ctrl)
		rows := []sqlc.NotificationJobs{
			{
				ID:       uuid.New(),
				Kind:     "event",
				Topic:    "reservation.created",
				Payload:  []byte(`{"passengers":2}`),
				RunAt:    pgtype.Timestamptz{Time: runAt, Valid: true},
				Status:   "queued",
				Attempts: 0,
			},
			{
				ID:        uuid.New(),
				Kind:      "event",
				Topic:     "reservation.cancelled",
				RunAt:     pgtype.Timestamptz{Time: runAt, Valid: true},
				Status:    "queued",
				Attempts:  2,
				LastError: pgtype.Text{String: "channel closed", Valid: true},
			},
		}
		mockQueries.EXPECT().ClaimPendingNotificationJobs(ctx, gomock.Any(), int32(50)).Return(rows, nil)

		jobs, err := readstore.NewNotificationReadStore(mockQueries, &mockDBTX{}).GetPendingJobs(ctx, 50)

		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.Equal(t, "reservation.created", jobs[0].Topic)
		assert.JSONEq(t, `{"passengers":2}`, string(jobs[0].Payload))
		assert.True(t, runAt.Equal(jobs[0].RunAt))
		assert.Nil(t, jobs[0].LastError)
		require.NotNil(t, jobs[1].LastError)
		assert.Equal(t, "channel closed", *jobs[1].LastError)
		assert.Equal(t, int32(2), jobs[1].Attempts)
	})

	t.Run("query failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockNotificationReadQueries(ctrl)
		mockQueries.EXPECT().ClaimPendingNotificationJobs(ctx, gomock.Any(), int32(10)).Return(nil, errDBConnectionLost)

		jobs, err := readstore.NewNotificationReadStore(mockQueries, &mockDBTX{}).GetPendingJobs(ctx, 10)

		assert.Nil(t, jobs)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
