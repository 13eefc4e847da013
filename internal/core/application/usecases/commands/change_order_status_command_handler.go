package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// ChangeOrderStatusCommandHandler executes status transitions for orders.
//
// The handler owns the read-modify-write cycle the state machine itself
// cannot serialize: it loads the order's current status, asks the domain
// to execute the transition, and persists the new status together with
// its audit record in one transaction. After the commit it notifies the
// publisher and refreshes the status cache; both are best effort and
// never undo the committed transition.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, publisher, cache, logger)
//	cmd, _ := NewChangeOrderStatusCommand(42, "pickup_done")
//
//	newStatus, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    // errors.Is(err, order.ErrInvalidStatus) or order.ErrIllegalTransition
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.StatusChangedPublisher
	cache      ports.StatusCache
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// The publisher and cache may be nil when the deployment runs without a
// message broker or cache; persistence behavior is unaffected.
func NewChangeOrderStatusCommandHandler(
	uowFactory UoWFactory,
	publisher ports.StatusChangedPublisher,
	cache ports.StatusCache,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		cache:      cache,
		logger:     logger,
	}
}

// Handle processes the status change command.
// Returns the new canonical status on success.
//
// Failure modes, all synchronous and none retried internally:
//   - errs.ErrObjectNotFound if no order has the given number
//   - order.ErrInvalidStatus if the requested status does not normalize
//   - order.ErrIllegalTransition if the transition graph has no such edge
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return order.Unknown, err
	}

	change, err := aggregate.ChangeStatus(cmd.Status())
	if err != nil {
		return order.Unknown, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return order.Unknown, err
	}

	if err = uow.StatusChangeRepository().Add(ctx, change); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	notifyStatusChanged(ctx, h.publisher, h.cache, h.logger, change, aggregate.Status())

	return aggregate.Status(), nil
}
