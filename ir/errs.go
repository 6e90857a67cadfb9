package ir

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedAccess is returned when a key is used on a non-object
	// or an index on a non-array.
	ErrUnsupportedAccess = errors.New("unsupported access")
	// ErrMissingValue is returned when a key or index along a path does not
	// exist.
	ErrMissingValue = errors.New("missing value")
	// ErrOutOfRange is a kind of ErrMissingValue for array indices.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrMissingValue)
	// ErrUnsupportedPayload is returned when wrapping a Go value which is not
	// a boolean, integer, float, string or nil.
	ErrUnsupportedPayload = errors.New("unsupported payload")

	ErrParse = errors.New("path parse error")
)

// PathError records where resolution of a path stopped.
type PathError struct {
	// Path is the prefix of the requested path which was resolved
	// including the failing token.
	Path Path
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }
