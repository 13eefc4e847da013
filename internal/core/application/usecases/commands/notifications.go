package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// notifyStatusChanged performs the post-commit side effects shared by all
// transition handlers: publishing the change to the notification
// collaborator and refreshing the status cache. Failures are logged and
// swallowed because the transition is already durable; undoing it here
// would be worse than a stale cache or a missed notification.
func notifyStatusChanged(
	ctx context.Context,
	publisher ports.StatusChangedPublisher,
	cache ports.StatusCache,
	logger *slog.Logger,
	change *order.StatusChange,
	status order.Status,
) {
	if publisher != nil {
		if err := publisher.Publish(ctx, change); err != nil && logger != nil {
			logger.ErrorContext(ctx, "failed to publish status change",
				"order_number", change.OrderNumber(), "error", err)
		}
	}

	if cache != nil {
		if err := cache.Set(ctx, change.OrderNumber(), status); err != nil && logger != nil {
			logger.WarnContext(ctx, "failed to refresh status cache",
				"order_number", change.OrderNumber(), "error", err)
		}
	}
}
