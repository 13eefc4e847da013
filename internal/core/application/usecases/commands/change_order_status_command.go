package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
	ErrStatusIsRequired = errors.New("status is required")
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status. The status is carried as the raw string received from
// the caller; normalization and transition validation happen in the domain,
// so upstream aliases like "accepted" or "pickup_done" are accepted here.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(42, "accepted")
//	if err != nil {
//	    return err
//	}
//
//	newStatus, err := handler.Handle(ctx, cmd)
//	// newStatus == order.Confirmed
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderNumber int64
	status      string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates that the order number is positive and the status string is not
// blank; whether the string names a known status is decided by the domain.
func NewChangeOrderStatusCommand(orderNumber int64, status string) (ChangeOrderStatusCommand, error) {
	statusCommand := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderNumber(orderNumber),
		statusCommand.setStatus(status),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderNumber returns the upstream identifier of the order to change.
func (c ChangeOrderStatusCommand) OrderNumber() int64 {
	return c.orderNumber
}

// Status returns the requested status as received from the caller.
func (c ChangeOrderStatusCommand) Status() string {
	return c.status
}

func (c *ChangeOrderStatusCommand) setOrderNumber(orderNumber int64) error {
	if orderNumber <= 0 {
		return ErrOrderNumberIsInvalid
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return ErrStatusIsRequired
	}

	c.status = status
	return nil
}
