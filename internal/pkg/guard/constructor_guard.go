// Package guard provides a defensive construction marker for value objects
// and commands. Embedding a ConstructorGuard lets a type distinguish
// instances created through its constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for a zero-value object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created
// through their designated constructor functions. A zero-value guard
// fails validation, so structs embedding it cannot bypass construction
// rules via direct initialization.
//
// Example:
//
//	type AddProductCommand struct {
//	    orderID kernel.OrderID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewAddProductCommand(orderID kernel.OrderID) (AddProductCommand, error) {
//	    if err := orderID.Validate(); err != nil {
//	        return AddProductCommand{}, err
//	    }
//	    return AddProductCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed object. For a zero
// value it returns validationError, or ErrDefaultConstructorGuard when
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
