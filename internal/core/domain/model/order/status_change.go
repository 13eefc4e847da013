package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrStatusChangeIsNotConstructed is returned when a StatusChange was not
	// created through NewStatusChange or RestoreStatusChange.
	ErrStatusChangeIsNotConstructed = errors.New(
		"StatusChange must be created via NewStatusChange or RestoreStatusChange",
	)
)

// StatusChange is the immutable record of one executed status transition.
// One record is appended per successful transition, in the same transaction
// that persists the order's new status, forming the order's audit trail.
type StatusChange struct {
	id          kernel.UUID
	orderNumber int64
	from        Status
	to          Status
	occurredAt  time.Time

	isConstructed bool
}

// NewStatusChange creates the record for a transition that just happened.
// The timestamp is taken at construction time in UTC.
//
// Both statuses must be valid and the pair must be an edge of the
// transition graph; the record exists only for transitions the machine
// actually allowed.
func NewStatusChange(id kernel.UUID, orderNumber int64, from, to Status) (*StatusChange, error) {
	return newStatusChange(id, orderNumber, from, to, time.Now().UTC())
}

// RestoreStatusChange reconstructs a StatusChange from persistence.
func RestoreStatusChange(
	id kernel.UUID,
	orderNumber int64,
	from, to Status,
	occurredAt time.Time,
) (*StatusChange, error) {
	return newStatusChange(id, orderNumber, from, to, occurredAt)
}

func newStatusChange(
	id kernel.UUID,
	orderNumber int64,
	from, to Status,
	occurredAt time.Time,
) (*StatusChange, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if orderNumber <= 0 {
		return nil, errs.NewValueIsInvalidError("orderNumber")
	}

	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return nil, err
	}

	if !from.CanTransitionTo(to) {
		return nil, NewIllegalTransitionError(orderNumber, from, to)
	}

	return &StatusChange{
		id:            id,
		orderNumber:   orderNumber,
		from:          from,
		to:            to,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the record was created through a factory method.
func (c *StatusChange) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrStatusChangeIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (c *StatusChange) ID() kernel.UUID {
	return c.id
}

// OrderNumber returns the number of the order the transition belongs to.
func (c *StatusChange) OrderNumber() int64 {
	return c.orderNumber
}

// From returns the status the order left.
func (c *StatusChange) From() Status {
	return c.from
}

// To returns the status the order entered.
func (c *StatusChange) To() Status {
	return c.to
}

// OccurredAt returns when the transition was executed, in UTC.
func (c *StatusChange) OccurredAt() time.Time {
	return c.occurredAt
}
