package person

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both "never existed" and "already soft-deleted";
// callers cannot tell them apart on purpose.
var ErrNotFound = errors.New("person not found")

// DuplicateError reports a uniqueness conflict on a named field,
// translated from the storage constraint at the repository boundary.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// ValidationError reports a missing or malformed required field at the
// service boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
