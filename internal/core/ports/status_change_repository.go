package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// StatusChangeRepository defines the persistence contract for the transition
// audit trail. One record is appended per successful transition, within the
// same transaction that updates the order's status.
type StatusChangeRepository interface {
	// Add appends a status change record to the order's history.
	Add(ctx context.Context, record *order.StatusChange) error

	// GetByOrderNumber retrieves the full transition history of an order,
	// oldest first.
	GetByOrderNumber(ctx context.Context, orderNumber int64) ([]*order.StatusChange, error)
}
