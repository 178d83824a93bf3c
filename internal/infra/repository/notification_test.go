//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orbital-booking/internal/infra"
	"orbital-booking/internal/infra/repository"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	repositorymock "orbital-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	payload := []byte(`{"reservation_id":"x"}`)

	t.Run("job queued with run time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		tx := &mockDBTX{}
		mockQueries.EXPECT().CreateNotificationJob(ctx, tx, gomock.Cond(func(arg sqlc.CreateNotificationJobParams) bool {
			return arg.Kind == "event" &&
				arg.Topic == "reservation.created" &&
				arg.Status == repository.JobStatusQueued &&
				arg.RunAt.Valid && arg.RunAt.Time.Equal(runAt) &&
				string(arg.Payload) == string(payload)
		})).Return(nil)

		err := repository.NewNotificationRepository(mockQueries, tx).CreateJob(ctx, tx, "event", "reservation.created", payload, runAt)
		assert.NoError(t, err)
	})

	t.Run("insert failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		tx := &mockDBTX{}
		mockQueries.EXPECT().CreateNotificationJob(ctx, tx, gomock.Any()).Return(errors.New("disk full"))

		err := repository.NewNotificationRepository(mockQueries, tx).CreateJob(ctx, tx, "event", "reservation.created", payload, runAt)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestNotificationRepository_UpdateJobStatus(t *testing.T) {
	ctx := context.Background()
	jobID := uuid.New()
	next := time.Date(2026, 3, 1, 12, 0, 10, 0, time.UTC)
	lastErr := "connection refused"

	testCases := []struct {
		name      string
		status    string
		lastError *string
		check     func(arg sqlc.UpdateNotificationJobStatusParams) bool
	}{
		{
			name:   "sent clears last error",
			status: repository.JobStatusSent,
			check: func(arg sqlc.UpdateNotificationJobStatusParams) bool {
				return arg.Status == "sent" && !arg.LastError.Valid
			},
		},
		{
			name:      "retry keeps last error",
			status:    repository.JobStatusQueued,
			lastError: &lastErr,
			check: func(arg sqlc.UpdateNotificationJobStatusParams) bool {
				return arg.Status == "queued" && arg.LastError.Valid && arg.LastError.String == lastErr && arg.RunAt.Time.Equal(next)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
			tx := &mockDBTX{}
			mockQueries.EXPECT().UpdateNotificationJobStatus(ctx, tx, gomock.Cond(func(arg sqlc.UpdateNotificationJobStatusParams) bool {
				return arg.ID == jobID && tc.check(arg)
			})).Return(nil)

			err := repository.NewNotificationRepository(mockQueries, tx).UpdateJobStatus(ctx, tx, jobID, tc.status, tc.lastError, next)
			assert.NoError(t, err)
		})
	}
}
