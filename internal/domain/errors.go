package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned by repositories when no row matches the
	// requested id/owner pair.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned by repositories when a unique constraint
	// rejects a write.
	ErrDuplicate = errors.New("already exists")
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// NotFoundError reports a missing row of a named resource. It matches
// ErrNotFound.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries either a list of field errors or a single message
// for input rejected before any store access.
type ValidationError struct {
	Fields  []FieldError
	Message string
}

// Invalid returns a ValidationError with a single message and no field list.
func Invalid(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
