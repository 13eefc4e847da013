package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a delivery order in the system. It is the aggregate root that
// carries the order's identity and its current lifecycle status.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a positive order number (the upstream/legacy identifier)
//   - Must have a non-empty delivery address
//   - Status changes go through the transition graph, never around it
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. The aggregate holds the current
// status only; the transition history lives in StatusChange records persisted
// by the caller in the same transaction.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the identifier upstream systems know the order by.
	// It appears in transition errors for traceability.
	orderNumber int64

	// address is the delivery destination
	address string

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. New orders always
// start in Pending status.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - orderNumber: Upstream identifier (must be positive)
//   - address: Delivery address (must be non-empty)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id kernel.UUID, orderNumber int64, address string) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setAddress(address),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any valid status, including Failed, which the state machine never
// produces itself but upstream collaborators may have written.
//
// Returns a validation error if any field is invalid.
func RestoreOrder(id kernel.UUID, orderNumber int64, address string, status Status) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setAddress(address),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed otherwise
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the identifier upstream systems know the order by.
func (o *Order) OrderNumber() int64 {
	return o.orderNumber
}

// Address returns the delivery address for the order.
func (o *Order) Address() string {
	return o.address
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// IsTerminal reports whether the order's lifecycle is closed.
func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

// ChangeStatus moves the order to the status named by rawTo, which may be
// a canonical name or an upstream alias.
//
// The requested transition is validated against the transition graph from
// the order's current status. On success the order's status is updated and
// the record of the change is returned so the caller can persist it
// alongside the order.
//
// Returns:
//   - the StatusChange describing the executed transition
//   - *InvalidStatusError if rawTo does not normalize
//   - *IllegalTransitionError if the edge does not exist
//
// Example:
//
//	change, err := o.ChangeStatus("accepted")
//	if err != nil {
//	    return err
//	}
//	// o.Status() == order.Confirmed; persist o and change together
func (o *Order) ChangeStatus(rawTo string) (*StatusChange, error) {
	newStatus, err := Transition(o.orderNumber, o.status.String(), rawTo)
	if err != nil {
		return nil, err
	}

	change, err := NewStatusChange(kernel.NewUUID(), o.orderNumber, o.status, newStatus)
	if err != nil {
		return nil, err
	}

	o.status = newStatus
	return change, nil
}

// Cancel moves the order to Cancelled.
//
// Cancellation is legal from every transient status up to and including
// OutForDelivery. Orders that are already cancelled, failed, delivered,
// or refunded cannot be cancelled.
//
// Returns the StatusChange on success or *IllegalTransitionError if the
// current status is not cancellable.
func (o *Order) Cancel() (*StatusChange, error) {
	return o.ChangeStatus(Cancelled.String())
}

// Refund moves the order to Refunded, the terminal state for orders that
// were cancelled or failed. Legal only from Cancelled and Failed.
//
// Returns the StatusChange on success or *IllegalTransitionError otherwise.
func (o *Order) Refund() (*StatusChange, error) {
	return o.ChangeStatus(Refunded.String())
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderNumber validates and sets the upstream order number.
// This is a private method used only during construction.
func (o *Order) setOrderNumber(orderNumber int64) error {
	if orderNumber <= 0 {
		return errs.NewValueIsInvalidError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

// setAddress validates and sets the delivery address.
// This is a private method used only during construction.
func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

// setStatus validates and sets the order's status during restoration.
// This is a private method used only by RestoreOrder.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
