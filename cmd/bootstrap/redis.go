package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"orbital-booking/internal/infra/lock"
	"orbital-booking/internal/pkg/config"
	"orbital-booking/internal/usecase/reconcile"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRouteLocker,
	),
)

// NewRouteLocker returns a Redis-backed lock when REDIS_ADDR is set and an
// in-process no-op otherwise.
func NewRouteLocker(lc fx.Lifecycle, cfg config.Config) (reconcile.RouteLocker, error) {
	if !cfg.Redis.Enabled() {
		slog.Info("redis not configured, reconcile lock is process-local")
		return lock.NewLocalRouteLocker(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return lock.NewRedisRouteLocker(client), nil
}
