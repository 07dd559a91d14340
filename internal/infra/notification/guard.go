package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"geoalert/config"
	"geoalert/internal/domain/entity"
	"geoalert/internal/domain/service"
	"geoalert/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	guardKeyPrefix  = "geoalert:notified"
	defaultGuardTTL = 24 * time.Hour
)

type guardStore interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// redisGuard claims (event, recipient) pairs in Redis so a redelivered notice is not sent twice.
type redisGuard struct {
	store guardStore
	ttl   time.Duration
}

// NewRedisGuard creates a DeliveryGuard on client.
func NewRedisGuard(client *redis.Client, ttl time.Duration) service.DeliveryGuard {
	if ttl <= 0 {
		ttl = defaultGuardTTL
	}

	return &redisGuard{store: client, ttl: ttl}
}

// GuardKey is the Redis key claimed for notice.
func GuardKey(notice entity.Notice) string {
	return fmt.Sprintf("%s:%d:%s", guardKeyPrefix, notice.EventID, entity.NormalizeEmail(notice.Email))
}

func (g *redisGuard) Acquire(ctx context.Context, notice entity.Notice) (bool, error) {
	ok, err := g.store.SetNX(ctx, GuardKey(notice), time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "claim notice")
	}

	return ok, nil
}

func (g *redisGuard) Release(ctx context.Context, notice entity.Notice) error {
	if err := g.store.Del(ctx, GuardKey(notice)).Err(); err != nil {
		return errors.Wrap(err, "release notice")
	}

	return nil
}

// guardedDispatcher skips notices the guard has already seen. A guard outage
// does not block delivery.
type guardedDispatcher struct {
	next   service.NotificationDispatcher
	guard  service.DeliveryGuard
	logger *slog.Logger
}

// WithGuard wraps next so each notice is claimed before it is sent.
// A nil guard returns next unchanged.
func WithGuard(next service.NotificationDispatcher, guard service.DeliveryGuard, logger *slog.Logger) service.NotificationDispatcher {
	if guard == nil {
		return next
	}

	return &guardedDispatcher{next: next, guard: guard, logger: logger}
}

func (d *guardedDispatcher) Notify(ctx context.Context, notice entity.Notice) error {
	claimed, err := d.guard.Acquire(ctx, notice)
	if err != nil {
		d.logger.WarnContext(ctx, "Delivery guard unavailable, sending without claim",
			slog.Int64("event_id", notice.EventID),
			slog.Any("error", err),
		)

		return d.next.Notify(ctx, notice)
	}
	if !claimed {
		d.logger.InfoContext(ctx, "Notice already delivered, skipping",
			slog.Int64("event_id", notice.EventID),
			slog.Int64("recipient_id", notice.RecipientID),
		)

		return nil
	}

	if err := d.next.Notify(ctx, notice); err != nil {
		if releaseErr := d.guard.Release(context.WithoutCancel(ctx), notice); releaseErr != nil {
			d.logger.WarnContext(ctx, "Failed to release notice claim",
				slog.Int64("event_id", notice.EventID),
				slog.Any("error", releaseErr),
			)
		}

		return err
	}

	return nil
}

// NewRedisClient connects to the redis section, or returns nil when it is absent.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return nil, nil //nolint:nilnil // Redis is optional.
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "ping redis %s", cfg.Redis.Addr)
	}

	return client, nil
}
