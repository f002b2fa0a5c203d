package domain

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrStoreUnavailable wraps every failure of the remote record store,
	// whatever the transport or service cause.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Fields returns the errors as a field -> message map.
func (e *ValidationError) Fields() map[string]string {
	m := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		m[fe.Field] = fe.Message
	}
	return m
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ValidationErrorFromMap builds a ValidationError from a field -> message map.
// Returns nil for an empty map. Fields are sorted for stable output.
func ValidationErrorFromMap(m map[string]string) *ValidationError {
	if len(m) == 0 {
		return nil
	}
	fields := make([]string, 0, len(m))
	for f := range m {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	errs := make([]FieldError, 0, len(fields))
	for _, f := range fields {
		errs = append(errs, FieldError{Field: f, Message: m[f]})
	}
	return &ValidationError{Errors: errs}
}
