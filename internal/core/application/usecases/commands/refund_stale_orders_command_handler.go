package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// RefundStaleOrdersCommandHandler performs the periodic refund sweep.
// It walks the cancelled and failed orders that outlived the grace period
// and drives each through its refund edge. Every refunded order gets its
// status update and audit record in the shared sweep transaction.
type RefundStaleOrdersCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.StatusChangedPublisher
	cache      ports.StatusCache
	logger     *slog.Logger
}

// NewRefundStaleOrdersCommandHandler creates a handler for the refund sweep.
// The publisher and cache may be nil; persistence behavior is unaffected.
func NewRefundStaleOrdersCommandHandler(
	uowFactory UoWFactory,
	publisher ports.StatusChangedPublisher,
	cache ports.StatusCache,
	logger *slog.Logger,
) RefundStaleOrdersCommandHandler {
	return RefundStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		cache:      cache,
		logger:     logger,
	}
}

// Handle processes the refund sweep command.
// Retrieves stale orders in cancelled and failed status, refunds each one,
// and commits all updates in a single transaction. Notifications go out
// after the commit.
func (h *RefundStaleOrdersCommandHandler) Handle(ctx context.Context, cmd RefundStaleOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.GracePeriod())

	var changes []*order.StatusChange
	for _, status := range []order.Status{order.Cancelled, order.Failed} {
		stale, err := uow.OrderRepository().GetStaleInStatus(ctx, status, cutoff)
		if err != nil {
			return err
		}

		for _, aggregate := range stale {
			change, err := aggregate.Refund()
			if err != nil {
				return err
			}

			if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
				return err
			}

			if err = uow.StatusChangeRepository().Add(ctx, change); err != nil {
				return err
			}

			changes = append(changes, change)
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	for _, change := range changes {
		notifyStatusChanged(ctx, h.publisher, h.cache, h.logger, change, change.To())
	}

	return nil
}
