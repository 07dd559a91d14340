package service

import (
	"context"

	"geoalert/internal/domain/entity"
)

// NoticeMessage is a queued notice consumed by the notifier worker
type NoticeMessage struct {
	RequestID string        `json:"request_id,omitempty"` // For distributed tracing
	MessageID string        `json:"message_id"`
	Notice    entity.Notice `json:"notice"`
}

// EventPublisher defines the interface for publishing notices to a message queue
type EventPublisher interface {
	// PublishNotice enqueues a notice for asynchronous delivery
	PublishNotice(ctx context.Context, msg *NoticeMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
