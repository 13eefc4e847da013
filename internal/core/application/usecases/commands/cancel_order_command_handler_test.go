package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCancelOrderCommand(42)

	orderRepo := new(MockOrderRepository)
	changeRepo := new(MockStatusChangeRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Twice(),
		orderRepo.On("GetByNumber", mock.Anything, int64(42)).
			Return(restoredOrder(t, 42, order.OutForDelivery), nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("StatusChangeRepository").Return(changeRepo).Once(),
		changeRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.StatusChange")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockStatusChangedPublisher)
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("*order.StatusChange")).Return(nil).Once()

	cache := new(MockStatusCache)
	cache.On("Set", mock.Anything, int64(42), order.Cancelled).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, publisher, cache, discardLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotCancellable(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCancelOrderCommand(42)

	for _, status := range []order.Status{
		order.ReachedDelivery,
		order.Delivered,
		order.Cancelled,
		order.Failed,
		order.Refunded,
	} {
		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("GetByNumber", mock.Anything, int64(42)).
			Return(restoredOrder(t, 42, status), nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCancelOrderCommandHandler(factory, nil, nil, discardLogger())
		err := h.Handle(ctx, cmd)
		require.ErrorIs(t, err, order.ErrIllegalTransition,
			"cancelling from %s should be illegal", status)
		uow.AssertExpectations(t)
	}
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewCancelOrderCommandHandler(factory, nil, nil, discardLogger())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
}
