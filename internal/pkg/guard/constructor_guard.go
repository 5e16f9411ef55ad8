// Package guard implements the constructor-guard pattern used by domain
// aggregates and commands to reject zero-value instances that bypassed
// their factory functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error is supplied
// and the guarded object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// Embed a ConstructorGuard in a struct and set it with NewConstructorGuard inside
// the factory function; the zero value fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value guard
// it returns validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
