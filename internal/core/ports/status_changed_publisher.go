package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// StatusChangedPublisher is the notification collaborator contract.
// The state machine itself has no side effects; command handlers call
// Publish after a successful commit so downstream consumers (push
// notifications, tracking pages, audit sinks) learn about the transition.
// Publish failures must not undo an already committed transition.
type StatusChangedPublisher interface {
	Publish(ctx context.Context, record *order.StatusChange) error
}
