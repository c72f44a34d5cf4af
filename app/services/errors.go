// Package services holds the business rules: the voucher engine, customer
// spend aggregation, dashboard aggregation and account management.
package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors the controllers translate into HTTP statuses.
var (
	// ErrNotFound: the row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden: the row exists but belongs to another user.
	ErrForbidden = errors.New("access denied")

	// ErrConflict: a uniqueness rule was violated.
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized: credentials did not check out.
	ErrUnauthorized = errors.New("invalid credentials")
)

// ValidationError carries field-level messages for a 422 response.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FieldError builds a single-field ValidationError.
func FieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// AsValidation unwraps a ValidationError if err carries one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
