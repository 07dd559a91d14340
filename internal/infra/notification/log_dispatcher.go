package notification

import (
	"context"
	"log/slog"

	deliverycontext "geoalert/internal/delivery/context"
	"geoalert/internal/domain/entity"
	"geoalert/internal/domain/service"
)

// logDispatcher only logs notices. It is the default when no channel is configured.
type logDispatcher struct {
	logger *slog.Logger
}

// NewLogDispatcher creates a NotificationDispatcher that writes each notice to the log.
func NewLogDispatcher(logger *slog.Logger) service.NotificationDispatcher {
	return &logDispatcher{logger: logger}
}

func (d *logDispatcher) Notify(ctx context.Context, notice entity.Notice) error {
	deliverycontext.GetLoggerOrDefault(ctx, d.logger).InfoContext(ctx, "[LogDispatcher] Notice",
		slog.Int64("event_id", notice.EventID),
		slog.String("event_name", notice.EventName),
		slog.Int64("recipient_id", notice.RecipientID),
		slog.String("geofence_name", notice.GeofenceName),
	)

	return nil
}
