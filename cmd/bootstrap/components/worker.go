package components

import (
	"context"
	"log/slog"

	"orbital-booking/internal/infra/messaging"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	"orbital-booking/internal/pkg/clock"
	"orbital-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// WorkerModule runs the outbox relay next to the API server. Without an
// AMQP URL jobs simply stay queued until a relay with a broker picks them up.
var WorkerModule = fx.Module("worker",
	fx.Invoke(StartOutboxRelay),
)

func StartOutboxRelay(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, q *sqlc.Queries, clk clock.Clock) {
	if !cfg.AMQP.Enabled() {
		slog.Info("AMQP not configured, outbox relay disabled")
		return
	}

	publisher := messaging.NewAMQPPublisher(cfg.AMQP)
	relay := messaging.NewRelay(pool, q, publisher, cfg.Outbox, clk)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			slog.Info("outbox relay started", "exchange", cfg.AMQP.Exchange, "interval", cfg.Outbox.PollInterval)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return publisher.Close()
		},
	})
}
