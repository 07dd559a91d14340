package service

import (
	"context"

	"geoalert/internal/domain/entity"
)

// NotificationDispatcher delivers a notice to one recipient.
// Implementations must be safe for concurrent use; one call per deduplicated match.
type NotificationDispatcher interface {
	Notify(ctx context.Context, notice entity.Notice) error
}

// DeliveryGuard prevents a recipient from receiving the same event notice twice
// when a notice is retried or redelivered.
type DeliveryGuard interface {
	// Acquire returns false when the notice was already claimed.
	Acquire(ctx context.Context, notice entity.Notice) (bool, error)

	// Release gives the claim back after a failed delivery so a retry can send it.
	Release(ctx context.Context, notice entity.Notice) error
}
