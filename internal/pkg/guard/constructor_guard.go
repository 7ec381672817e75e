// Package guard provides the constructor guard pattern used by domain value
// objects, entities, and command/query objects. Embedding a ConstructorGuard
// in a struct makes it possible to distinguish instances built through their
// designated constructor from zero values, so that validation can reject the
// latter before any business operation runs on them.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed properly and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. The zero value is "not constructed" and fails
// validation, which is exactly what makes the pattern work.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the "constructed" state.
// Call it inside constructors of guarded types.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was properly constructed.
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
