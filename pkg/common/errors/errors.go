package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the gopace library

var (
	// ErrInvalidArgument indicates that a construction-time argument was rejected
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrClosed indicates that an operation was attempted on a closed resource
	ErrClosed = errors.New("resource is closed")

	// ErrAlreadyRunning indicates that a component was started twice
	ErrAlreadyRunning = errors.New("already running")
)

// ValidationError describes a rejected parameter with enough context to fix it.
// It unwraps to ErrInvalidArgument so callers can match with errors.Is.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a remediation hint and returns the same error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap returns ErrInvalidArgument so validation failures can be matched generically.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// OperationError wraps a failure that occurred while performing a named
// operation, typically against an external collaborator such as Redis.
type OperationError struct {
	Module    string
	Operation string
	Cause     error
}

// NewOperationError creates an OperationError wrapping cause.
func NewOperationError(module, operation string, cause error) *OperationError {
	return &OperationError{
		Module:    module,
		Operation: operation,
		Cause:     cause,
	}
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	return fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Cause
}
