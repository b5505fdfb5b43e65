package catalog

import (
	"errors"
	"fmt"
)

// ErrResourceNotFound is returned when the named bundled resource does not
// exist in any of the bundle directories.
var ErrResourceNotFound = errors.New("bundled resource not found")

// DecodeError reports a catalog document that exists but does not match the
// expected schema (malformed structure, wrong types).
type DecodeError struct {
	Resource string // logical resource name
	Err      error  // underlying cause
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode catalog %q: %v", e.Resource, e.Err)
}

// Unwrap returns the underlying decode cause
func (e *DecodeError) Unwrap() error {
	return e.Err
}
