package errorwrapper

import (
	"errors"
	"fmt"
)

// Common error types used across the application
var (
	// ErrInvalidInput indicates invalid user input
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates an input path does not exist
	ErrNotFound = errors.New("not found")
	// ErrInvalidComparison indicates the two inputs cannot be compared (file vs directory)
	ErrInvalidComparison = errors.New("invalid comparison")
	// ErrInvalidConfiguration indicates configuration issues
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// Is lets errors.Is(err, ErrInvalidInput) match any validation error.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NotFoundError reports a missing input path
type NotFoundError struct {
	Path    string
	Wrapped error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path not found: '%s'", e.Path)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Unwrap() error {
	return e.Wrapped
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(path string, wrapped error) *NotFoundError {
	return &NotFoundError{
		Path:    path,
		Wrapped: wrapped,
	}
}

// NewInvalidComparisonError reports two inputs that cannot be compared with each other
func NewInvalidComparisonError(path1, path2, reason string) error {
	return fmt.Errorf("%w: '%s' and '%s': %s", ErrInvalidComparison, path1, path2, reason)
}
