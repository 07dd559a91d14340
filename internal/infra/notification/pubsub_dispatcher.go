package notification

import (
	"context"

	deliverycontext "geoalert/internal/delivery/context"
	"geoalert/internal/domain/entity"
	"geoalert/internal/domain/service"
	"geoalert/internal/errors"

	"github.com/google/uuid"
)

// pubsubDispatcher enqueues notices for the notifier worker instead of delivering them inline.
type pubsubDispatcher struct {
	publisher service.EventPublisher
}

// NewPubSubDispatcher creates a NotificationDispatcher backed by an EventPublisher.
func NewPubSubDispatcher(publisher service.EventPublisher) service.NotificationDispatcher {
	return &pubsubDispatcher{publisher: publisher}
}

func (d *pubsubDispatcher) Notify(ctx context.Context, notice entity.Notice) error {
	msg := &service.NoticeMessage{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		MessageID: uuid.NewString(),
		Notice:    notice,
	}

	if err := d.publisher.PublishNotice(ctx, msg); err != nil {
		return errors.Wrapf(err, "enqueue notice for event %d", notice.EventID)
	}

	return nil
}
