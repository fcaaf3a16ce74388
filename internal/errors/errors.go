// Package errors provides structured error types and error handling utilities.
package errors

import (
	"errors"
	"fmt"
)

// Wrap creates a new error by wrapping an existing error with additional context.
// This uses fmt.Errorf with %w verb for proper error chain support.
func Wrap(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// New creates a new error using fmt.Errorf.
// This is a convenience function for creating errors with formatting.
func New(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Join wraps multiple errors into a single error.
// This is a convenience wrapper around errors.Join (Go 1.20+).
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Sentinel errors used to classify scan failures.
var (
	// ErrNotJSON marks files that exist but do not parse as notebook JSON.
	// Scanners report these and continue with the remaining files.
	ErrNotJSON = errors.New("not a JSON notebook")

	// ErrNotFound marks a missing file, cell, or grade ID.
	ErrNotFound = errors.New("not found")

	// ErrNoFiles marks a scan whose file set came up empty.
	ErrNoFiles = errors.New("no files to scan")

	// ErrValidation marks rejected arguments or configuration.
	ErrValidation = errors.New("validation error")

	// ErrSecurity marks paths rejected by the sandbox validator.
	ErrSecurity = errors.New("security error")
)

// Validation creates a validation error with the given message.
func Validation(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}

// Security creates a security error with the given message.
func Security(message string) error {
	return fmt.Errorf("%w: %s", ErrSecurity, message)
}

// SecurityWithDetails creates a security error with a message and details.
func SecurityWithDetails(message, details string) error {
	return fmt.Errorf("%w: %s (%s)", ErrSecurity, message, details)
}

// NotFound creates a not-found error with the given message.
func NotFound(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}
