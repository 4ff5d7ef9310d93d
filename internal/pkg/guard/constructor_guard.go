// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities, commands and queries so that zero values can be told apart from
// instances built by their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing object was created by its constructor.
//
// Example usage:
//
//	var ErrWindowNotConstructed = errors.New("TimeWindow must be created via NewTimeWindow")
//
//	type TimeWindow struct {
//	    from, to int
//	    guard    guard.ConstructorGuard
//	}
//
//	func (w TimeWindow) Validate() error {
//	    return w.guard.Validate(ErrWindowNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
