package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStatus is the sentinel for status strings that do not
	// resolve to any canonical status. Matched with errors.Is.
	ErrInvalidStatus = errors.New("status is not recognized")

	// ErrIllegalTransition is the sentinel for transitions between two
	// valid statuses that are not connected by an edge. Matched with
	// errors.Is.
	ErrIllegalTransition = errors.New("status transition is not allowed")
)

// InvalidStatusError reports a raw status string that failed to normalize:
// a typo, new upstream vocabulary not yet aliased, or corrupted data.
// It carries the offending raw value and the order number so the caller
// can log it or surface a clear message. Not retriable; the caller must
// treat it as a data-integrity problem or extend the alias table.
type InvalidStatusError struct {
	OrderNumber int64
	RawStatus   string
}

// NewInvalidStatusError creates an InvalidStatusError for the given
// order number and unrecognized raw status value.
func NewInvalidStatusError(orderNumber int64, rawStatus string) *InvalidStatusError {
	return &InvalidStatusError{
		OrderNumber: orderNumber,
		RawStatus:   rawStatus,
	}
}

// Error implements the error interface.
func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("%s: %q (order %d)", ErrInvalidStatus, e.RawStatus, e.OrderNumber)
}

// Unwrap returns ErrInvalidStatus to support errors.Is checks.
func (e *InvalidStatusError) Unwrap() error {
	return ErrInvalidStatus
}

// IllegalTransitionError reports a transition attempt between two valid
// statuses with no connecting edge. This covers terminal-state lockout,
// backward transitions, and self transitions. Not retriable; it is either
// a stale read racing another update or a legitimate user action being
// rejected, and the caller decides which message to show.
type IllegalTransitionError struct {
	OrderNumber int64
	From        Status
	To          Status
}

// NewIllegalTransitionError creates an IllegalTransitionError for the
// given order number and normalized from/to statuses.
func NewIllegalTransitionError(orderNumber int64, from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{
		OrderNumber: orderNumber,
		From:        from,
		To:          to,
	}
}

// Error implements the error interface.
func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s (order %d)", ErrIllegalTransition, e.From, e.To, e.OrderNumber)
}

// Unwrap returns ErrIllegalTransition to support errors.Is checks.
func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
