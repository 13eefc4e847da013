package commands

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrRefundStaleOrdersCommandIsNotConstructed = errors.New(
		"RefundStaleOrdersCommand must be created via NewRefundStaleOrdersCommand constructor",
	)
	ErrGracePeriodIsInvalid = errors.New("grace period must be greater than 0")
)

// RefundStaleOrdersCommand triggers a refund sweep over cancelled and failed
// orders. Orders sitting in either status longer than the grace period are
// moved to refunded through their refund edges, closing their lifecycle.
//
// Example:
//
//	cmd, _ := NewRefundStaleOrdersCommand(24 * time.Hour)
//	handler := NewRefundStaleOrdersCommandHandler(uowFactory, publisher, cache, logger)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Refund sweep failed: %v", err)
//	}
type RefundStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	gracePeriod time.Duration

	guard guard.ConstructorGuard
}

// NewRefundStaleOrdersCommand creates a command to refund orders that have
// been cancelled or failed for longer than gracePeriod.
func NewRefundStaleOrdersCommand(gracePeriod time.Duration) (RefundStaleOrdersCommand, error) {
	command := RefundStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if gracePeriod <= 0 {
		return RefundStaleOrdersCommand{}, ErrGracePeriodIsInvalid
	}
	command.gracePeriod = gracePeriod

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefundStaleOrdersCommandIsNotConstructed if validation fails.
func (c RefundStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRefundStaleOrdersCommandIsNotConstructed)
}

// GracePeriod returns how long an order may stay cancelled or failed
// before the sweep refunds it.
func (c RefundStaleOrdersCommand) GracePeriod() time.Duration {
	return c.gracePeriod
}
