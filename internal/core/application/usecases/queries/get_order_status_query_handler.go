package queries

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler serves the order tracking read.
// It answers from the status cache when possible and falls back to the
// database, repopulating the cache on the way out. The cache and logger
// may be nil; the handler then reads straight from the database.
//
// Example:
//
//	handler := NewGetOrderStatusQueryHandler(db, cache, logger)
//	query, _ := NewGetOrderStatusQuery(42)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order status: %v", err)
//	    return err
//	}
//
//	fmt.Printf("order %d: %s, next: %v\n", resp.OrderNumber, resp.Status, resp.NextStatuses)
type GetOrderStatusQueryHandler struct {
	db     *gorm.DB
	cache  ports.StatusCache
	logger *slog.Logger
}

// NewGetOrderStatusQueryHandler creates a handler for order status lookups.
// Requires a GORM database connection; the cache and logger are optional.
func NewGetOrderStatusQueryHandler(
	db *gorm.DB,
	cache ports.StatusCache,
	logger *slog.Logger,
) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db, cache: cache, logger: logger}
}

// Handle executes the status lookup.
// Returns errs.ErrObjectNotFound if no order has the given number.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	status, found, err := h.lookupCache(ctx, query.OrderNumber())
	if err != nil && h.logger != nil {
		h.logger.WarnContext(ctx, "status cache lookup failed",
			"order_number", query.OrderNumber(), "error", err)
	}

	if !found {
		status, err = h.lookupDatabase(ctx, query.OrderNumber())
		if err != nil {
			return GetOrderStatusQueryResponse{}, err
		}

		h.refreshCache(ctx, query.OrderNumber(), status)
	}

	return GetOrderStatusQueryResponse{
		OrderNumber:   query.OrderNumber(),
		Status:        status,
		NextStatuses:  status.NextStatuses(),
		IsTerminal:    status.IsTerminal(),
		IsCancellable: status.IsCancellable(),
	}, nil
}

func (h GetOrderStatusQueryHandler) lookupCache(
	ctx context.Context,
	orderNumber int64,
) (order.Status, bool, error) {
	if h.cache == nil {
		return order.Unknown, false, nil
	}

	return h.cache.Get(ctx, orderNumber)
}

func (h GetOrderStatusQueryHandler) lookupDatabase(
	ctx context.Context,
	orderNumber int64,
) (order.Status, error) {
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM orders
		WHERE order_number = ?
	`, orderNumber).Row()

	if err := row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return order.Unknown, errs.NewObjectNotFoundError("orderNumber", orderNumber)
		}

		return order.Unknown, err
	}

	return order.Status(status), nil
}

func (h GetOrderStatusQueryHandler) refreshCache(
	ctx context.Context,
	orderNumber int64,
	status order.Status,
) {
	if h.cache == nil {
		return
	}

	if err := h.cache.Set(ctx, orderNumber, status); err != nil && h.logger != nil {
		h.logger.WarnContext(ctx, "failed to refresh status cache",
			"order_number", orderNumber, "error", err)
	}
}
