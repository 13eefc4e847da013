package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// CancelOrderCommandHandler cancels orders through the transition graph.
// It is the customer/support-facing counterpart of the generic status
// change: same transactional read-modify-write, fixed cancelled target.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.StatusChangedPublisher
	cache      ports.StatusCache
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// The publisher and cache may be nil; persistence behavior is unaffected.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.StatusChangedPublisher,
	cache ports.StatusCache,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		cache:      cache,
		logger:     logger,
	}
}

// Handle processes the cancellation command.
// Returns order.ErrIllegalTransition (wrapped) when the order's current
// status has no cancellation edge, such as delivered or refunded orders.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	aggregate, err := uow.OrderRepository().GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	change, err := aggregate.Cancel()
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.StatusChangeRepository().Add(ctx, change); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyStatusChanged(ctx, h.publisher, h.cache, h.logger, change, aggregate.Status())

	return nil
}
