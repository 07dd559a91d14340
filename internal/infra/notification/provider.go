package notification

import (
	"context"
	"log/slog"

	"geoalert/config"
	"geoalert/internal/domain/constants"
	"geoalert/internal/domain/service"
	"geoalert/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// DispatcherParams holds dependencies for the NotificationDispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Guard     service.DeliveryGuard  `optional:"true"`
	Publisher service.EventPublisher `optional:"true"`
}

// NewDispatcher creates the dispatcher used right after an event is created,
// selected by notification.provider
func NewDispatcher(params DispatcherParams) (service.NotificationDispatcher, error) {
	channel := params.Config.Notification.Provider
	if channel == constants.NotificationProviderPubSub {
		if params.Publisher == nil {
			return nil, errors.New("pubsub provider requires an event publisher")
		}
		params.Logger.Info("Notices are queued for the notifier worker")

		return NewPubSubDispatcher(params.Publisher), nil
	}

	return newChannelDispatcher(params, channel)
}

// NewWorkerDispatcher creates the dispatcher the notifier worker delivers through,
// selected by notification.workerChannel
func NewWorkerDispatcher(params DispatcherParams) (service.NotificationDispatcher, error) {
	channel := params.Config.Notification.WorkerChannel
	if channel == constants.NotificationProviderPubSub {
		return nil, errors.New("worker channel cannot be pubsub")
	}

	return newChannelDispatcher(params, channel)
}

func newChannelDispatcher(params DispatcherParams, channel string) (service.NotificationDispatcher, error) {
	var (
		dispatcher service.NotificationDispatcher
		err        error
	)

	switch channel {
	case constants.NotificationProviderSMTP:
		tmpl, loadErr := LoadMailTemplate(params.Ctx, params.Config)
		if loadErr != nil {
			return nil, loadErr
		}
		dispatcher, err = NewMailDispatcher(params.Config, tmpl, params.Logger)

	case constants.NotificationProviderFirebase:
		dispatcher, err = NewFirebaseDispatcher(params.Ctx, params.Config, params.Logger)

	case constants.NotificationProviderLog, "":
		dispatcher = NewLogDispatcher(params.Logger)

	default:
		return nil, errors.Errorf("unknown notification channel: %s", channel)
	}
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Notification channel initialized", slog.String("channel", channelName(channel)))

	return WithGuard(dispatcher, params.Guard, params.Logger), nil
}

func channelName(channel string) string {
	if channel == "" {
		return constants.NotificationProviderLog
	}

	return channel
}

// GuardParams holds dependencies for the DeliveryGuard, injected by Fx
type GuardParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDeliveryGuard connects the Redis guard when redis.addr is set.
// Without Redis the guard is nil and notices are sent unguarded.
func NewDeliveryGuard(params GuardParams) (service.DeliveryGuard, error) {
	client, err := NewRedisClient(params.Ctx, params.Config)
	if err != nil {
		return nil, err
	}
	if client == nil {
		params.Logger.Info("Redis not configured, delivery guard disabled")

		return nil, nil //nolint:nilnil // Redis is optional.
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return closeRedis(client)
		},
	})

	return NewRedisGuard(client, params.Config.Redis.GuardTTL), nil
}

func closeRedis(client *redis.Client) error {
	if err := client.Close(); err != nil {
		return errors.Wrap(err, "close redis")
	}

	return nil
}

// Module provides the dispatcher used by the API
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDeliveryGuard),
	fx.Provide(NewDispatcher),
)

// WorkerModule provides the dispatcher used by the notifier worker
//
//nolint:gochecknoglobals
var WorkerModule = fx.Options(
	fx.Provide(NewDeliveryGuard),
	fx.Provide(NewWorkerDispatcher),
)
