// Package guard provides the ConstructorGuard pattern for application-layer
// objects such as commands and queries. Embedding a guard in a struct makes
// zero-value instances detectable, so handlers can reject objects that were
// not created through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation, which is the whole point.
//
// Example:
//
//	type ChangeOrderStatusCommand struct {
//	    orderNumber int64
//	    status      string
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewChangeOrderStatusCommand(orderNumber int64, status string) (ChangeOrderStatusCommand, error) {
//	    // validate inputs...
//	    return ChangeOrderStatusCommand{
//	        orderNumber: orderNumber,
//	        status:      status,
//	        guard:       guard.NewConstructorGuard(),
//	    }, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
