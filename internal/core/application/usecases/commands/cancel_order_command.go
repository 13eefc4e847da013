package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a request to cancel an order.
// Cancellation is a side exit of the lifecycle graph: it is legal from
// every transient status up to and including out_for_delivery, and the
// domain rejects it everywhere else.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber int64

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the order with the
// given upstream number. Returns an error if the number is not positive.
func NewCancelOrderCommand(orderNumber int64) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setOrderNumber(orderNumber); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderNumber returns the upstream identifier of the order to cancel.
func (c CancelOrderCommand) OrderNumber() int64 {
	return c.orderNumber
}

func (c *CancelOrderCommand) setOrderNumber(orderNumber int64) error {
	if orderNumber <= 0 {
		return ErrOrderNumberIsInvalid
	}

	c.orderNumber = orderNumber
	return nil
}
