// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when submitted values fail validation.
	// It is wrapped by ValidationError, which carries the per-field details.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidMode is returned when a form mode is not one of the known modes.
	ErrInvalidMode = errors.New("invalid form mode")

	// ErrSubmissionInFlight is returned when a form is submitted again before
	// the previous attempt has resolved.
	ErrSubmissionInFlight = errors.New("submission already in progress")
)

// FieldError describes a single field that failed validation.
type FieldError struct {
	// Field is the form field name (e.g. "email").
	Field string
	// Tag is the validation rule that failed (e.g. "required", "min").
	Tag string
	// Param is the rule parameter, if any (e.g. "3" for min=3).
	Param string
	// Message is a user-facing description of the failure.
	Message string
}

// Error implements the error interface for FieldError.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// ValidationError collects every field that failed validation, in the order
// the fields appear on the form.
type ValidationError struct {
	Fields []FieldError
	// Err is the underlying cause, ErrValidation unless set otherwise.
	Err error
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Fields: []FieldError{{Field: field, Message: message}},
		Err:    err,
	}
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return fmt.Sprintf("%v: %s", e.Unwrap(), strings.Join(parts, "; "))
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
	return e.Err
}

// Field returns the error for the named field and whether one exists.
func (e *ValidationError) Field(name string) (FieldError, bool) {
	for _, f := range e.Fields {
		if f.Field == name {
			return f, true
		}
	}
	return FieldError{}, false
}

// Messages returns field name to message, for rendering inline errors.
func (e *ValidationError) Messages() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if _, ok := out[f.Field]; !ok {
			out[f.Field] = f.Message
		}
	}
	return out
}
