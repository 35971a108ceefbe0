package catalog

import (
	"errors"
	"fmt"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports a construction argument that violates an entity
// invariant.
type ValidationError struct {
	Entity string // "contributor", "publication" or "work"
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %s: %s", e.Entity, e.Field, e.Reason)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(entity, field, format string, args ...any) *ValidationError {
	return &ValidationError{Entity: entity, Field: field, Reason: fmt.Sprintf(format, args...)}
}
