package ports

import (
	"context"

	"github.com/freelancehub/marketplace-system/internal/core/domain"
)

// Notifier delivers a message-created notification to its receiver. The
// delivery transport is an external concern; implementations must be safe
// for concurrent use by the dispatcher workers.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// NotificationQueue accepts notifications for asynchronous fan-out.
type NotificationQueue interface {
	Enqueue(n domain.Notification)
}
