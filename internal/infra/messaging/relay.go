package messaging

import (
	"context"
	"log/slog"
	"time"

	"orbital-booking/internal/infra/readstore"
	"orbital-booking/internal/infra/repository"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	"orbital-booking/internal/pkg/clock"
	"orbital-booking/internal/pkg/config"
	"orbital-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Relay drains the notification_jobs outbox. Delivery is at least once:
// a job is marked sent only after the broker accepted it.
type Relay struct {
	pool      *pgxpool.Pool
	q         *sqlc.Queries
	publisher Publisher
	cfg       config.OutboxConfig
	clock     clock.Clock
}

func NewRelay(pool *pgxpool.Pool, q *sqlc.Queries, publisher Publisher, cfg config.OutboxConfig, clk clock.Clock) *Relay {
	return &Relay{
		pool:      pool,
		q:         q,
		publisher: publisher,
		cfg:       cfg,
		clock:     clk,
	}
}

func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("outbox relay pass failed", "error", err.Error())
			}
		}
	}
}

// RunOnce publishes one batch of due jobs and returns how many were sent.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	return shared.RunInTx(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx sqlc.DBTX) (int, error) {
		jobs, err := readstore.NewNotificationReadStore(r.q, tx).GetPendingJobs(ctx, r.cfg.BatchSize)
		if err != nil {
			return 0, err
		}

		repo := repository.NewNotificationRepository(r.q, tx)
		sent := 0
		for _, job := range jobs {
			now := r.clock.Now()
			perr := r.publisher.Publish(ctx, job.Topic, job.ID.String(), job.Payload)
			if perr == nil {
				if err := repo.UpdateJobStatus(ctx, tx, job.ID, repository.JobStatusSent, nil, now); err != nil {
					return sent, err
				}
				sent++
				continue
			}

			msg := perr.Error()
			status := repository.JobStatusQueued
			attempts := job.Attempts + 1
			if attempts >= r.cfg.MaxAttempts {
				status = repository.JobStatusFailed
			}
			slog.Warn("outbox publish failed",
				slog.String("job_id", job.ID.String()),
				slog.String("topic", job.Topic),
				slog.Int("attempts", int(attempts)),
				slog.String("status", status),
				slog.String("error", msg))

			nextRun := now.Add(r.cfg.RetryBackoff * time.Duration(attempts))
			if err := repo.UpdateJobStatus(ctx, tx, job.ID, status, &msg, nextRun); err != nil {
				return sent, err
			}
		}
		return sent, nil
	})
}
