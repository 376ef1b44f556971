package internal

import "github.com/pkg/errors"

// The geometry predicates have no error paths, and threading errors through
// them just for input validation would clutter every signature. Validation
// panics instead, and the checked entry points recover to convert to an error.

// RingError is a concrete type so that runtime panics, which are also errors,
// are never mistaken for a validation failure.
type RingError struct {
	error
}

func (e RingError) Cause() error {
	return e.error
}

// Panic with a RingError.
func fatalf(format string, args ...interface{}) {
	panic(RingError{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if ringError, ok := r.(RingError); ok {
			return ringError
		}
		panic(r)
	}
	return nil
}
