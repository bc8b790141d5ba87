package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing agent.
	ErrNotFound = errors.New("not found")
	// ErrValidation signals malformed registry source data.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidQuery signals a proximity query outside the accepted contract.
	ErrInvalidQuery = errors.New("invalid query")
)

// ValidationError wraps ErrValidation with the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a registry validation error.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// InvalidQueryError wraps ErrInvalidQuery with the offending query parameter.
type InvalidQueryError struct {
	Field  string
	Reason string
}

func (e *InvalidQueryError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidQuery.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidQuery.Error(), e.Field, e.Reason)
}

func (e *InvalidQueryError) Unwrap() error { return ErrInvalidQuery }

// NewInvalidQuery creates a query validation error.
func NewInvalidQuery(field, reason string) error {
	return &InvalidQueryError{Field: field, Reason: reason}
}
