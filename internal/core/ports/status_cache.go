package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// StatusCache is a read-through cache of an order's current status, keyed
// by order number. It only ever accelerates reads: the database row stays
// the source of truth, and command handlers overwrite the cached value
// after every successful transition.
type StatusCache interface {
	// Get returns the cached status for the order number.
	// A cache miss is reported as (Unknown, false, nil), not an error.
	Get(ctx context.Context, orderNumber int64) (order.Status, bool, error)

	// Set stores the status for the order number.
	Set(ctx context.Context, orderNumber int64, status order.Status) error
}
