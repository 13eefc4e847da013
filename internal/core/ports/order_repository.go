package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// It supplies the order's current status before a transition and durably
// stores the new status after a successful one. Both sides of that
// read-modify-write must run inside the same unit of work; GetByNumber
// locks the loaded row for the rest of the transaction, so two concurrent
// requests cannot both observe the same "current" status and race each
// other to the update.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByNumber retrieves an order aggregate by its upstream order number.
	// Returns the complete order with its current status.
	GetByNumber(ctx context.Context, orderNumber int64) (*order.Order, error)

	// GetStaleInStatus retrieves all orders that entered the given status
	// before the cutoff time. Used by the refund sweep to find cancelled
	// and failed orders that outlived the refund grace period.
	GetStaleInStatus(ctx context.Context, status order.Status, updatedBefore time.Time) ([]*order.Order, error)
}
