package lock

import (
	"context"
	"log/slog"
	"time"

	"orbital-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "reconcile:route:"

// Deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

// RedisRouteLocker spans processes: every reconcile runner sharing the Redis
// instance sees the same lock.
type RedisRouteLocker struct {
	client *redis.Client
}

func NewRedisRouteLocker(client *redis.Client) *RedisRouteLocker {
	return &RedisRouteLocker{client: client}
}

func (l *RedisRouteLocker) TryLock(ctx context.Context, routeID uuid.UUID, ttl time.Duration) (func(context.Context), bool, error) {
	key := keyPrefix + routeID.String()
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, errs.Classify(errs.Wrap(err, "acquire route lock"), errs.ErrStorageFailure)
	}
	if !ok {
		return nil, false, nil
	}

	return func(ctx context.Context) {
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			slog.Warn("failed to release route lock", "route_id", routeID.String(), "error", err.Error())
		}
	}, true, nil
}

// LocalRouteLocker is used when Redis is not configured. Combined with the
// guard's in-process single-flight it only protects a single process.
type LocalRouteLocker struct{}

func NewLocalRouteLocker() *LocalRouteLocker {
	return &LocalRouteLocker{}
}

func (LocalRouteLocker) TryLock(context.Context, uuid.UUID, time.Duration) (func(context.Context), bool, error) {
	return func(context.Context) {}, true, nil
}
