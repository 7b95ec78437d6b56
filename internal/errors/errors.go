// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrTradeNotFound   = errors.New("trade not found")
	ErrConfigInvalid   = errors.New("invalid configuration")
	ErrInputValidation = errors.New("input validation failed")
	ErrInvalidSortKey  = errors.New("invalid sort key")
	ErrInvalidRange    = errors.New("invalid time range")
)

// ValidationError represents a validation error at the input boundary.
// The aggregation core assumes validated trades; anything malformed is
// rejected here before it reaches the store.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInputValidation
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// SeedError represents a failure decoding the embedded sample dataset.
type SeedError struct {
	Row int
	Err error
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("seed error at row %d: %v", e.Row, e.Err)
}

func (e *SeedError) Unwrap() error {
	return e.Err
}

// NewSeedError creates a new SeedError.
func NewSeedError(row int, err error) *SeedError {
	return &SeedError{Row: row, Err: err}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
