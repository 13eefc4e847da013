package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatusCache struct{ mock.Mock }

func (m *MockStatusCache) Get(ctx context.Context, orderNumber int64) (order.Status, bool, error) {
	args := m.Called(ctx, orderNumber)
	return args.Get(0).(order.Status), args.Bool(1), args.Error(2)
}

func (m *MockStatusCache) Set(ctx context.Context, orderNumber int64, status order.Status) error {
	args := m.Called(ctx, orderNumber, status)
	return args.Error(0)
}

// A cache hit must answer the lookup without touching the database: the
// handler is constructed with a nil connection and would panic otherwise.
func TestGetOrderStatusQueryHandler_Handle_CacheHit(t *testing.T) {
	ctx := t.Context()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cache := new(MockStatusCache)
	cache.On("Get", mock.Anything, int64(42)).Return(order.PickedUp, true, nil).Once()

	h := queries.NewGetOrderStatusQueryHandler(nil, cache, logger)
	query, err := queries.NewGetOrderStatusQuery(42)
	require.NoError(t, err)

	resp, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.OrderNumber)
	assert.Equal(t, order.PickedUp, resp.Status)
	assert.Equal(t, []order.Status{order.OutForDelivery, order.Cancelled}, resp.NextStatuses)
	assert.False(t, resp.IsTerminal)
	assert.True(t, resp.IsCancellable)
	cache.AssertExpectations(t)
}

func TestGetOrderStatusQueryHandler_Handle_TerminalStatusFromCache(t *testing.T) {
	ctx := t.Context()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cache := new(MockStatusCache)
	cache.On("Get", mock.Anything, int64(42)).Return(order.Delivered, true, nil).Once()

	h := queries.NewGetOrderStatusQueryHandler(nil, cache, logger)
	query, _ := queries.NewGetOrderStatusQuery(42)

	resp, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, resp.Status)
	assert.Empty(t, resp.NextStatuses)
	assert.True(t, resp.IsTerminal)
	assert.False(t, resp.IsCancellable)
}

func TestGetOrderStatusQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	h := queries.NewGetOrderStatusQueryHandler(nil, nil, nil)
	var query queries.GetOrderStatusQuery

	_, err := h.Handle(ctx, query)
	require.ErrorIs(t, err, queries.ErrGetOrderStatusQueryIsNotConstructed)
}
