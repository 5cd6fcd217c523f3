package common

import (
	"errors"
	"fmt"
	"strings"
)

// Common error types used across the application
var (
	// ErrInvalidInput indicates invalid user input
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrEmptyContent indicates an extractor produced zero-length output
	ErrEmptyContent = errors.New("extracted content is empty")
	// ErrUnsupportedType indicates a URL type an extractor cannot branch on
	ErrUnsupportedType = errors.New("unsupported url type")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context information
func WrapErrorf(err error, format string, args ...interface{}) error {
	return WrapError(err, fmt.Sprintf(format, args...))
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NetworkError is any failure acquiring content: the classification probe,
// the rendered fetch or a render timeout.
type NetworkError struct {
	URL     string
	Reason  string
	Wrapped error
}

func (e *NetworkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("network error for '%s': %s: %v", e.URL, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("network error for '%s': %s", e.URL, e.Reason)
}

func (e *NetworkError) Unwrap() error {
	return e.Wrapped
}

// NewNetworkError creates a new network error
func NewNetworkError(url, reason string, wrapped error) *NetworkError {
	return &NetworkError{
		URL:     url,
		Reason:  reason,
		Wrapped: wrapped,
	}
}

// ParserError is any failure turning fetched bytes into extracted content,
// including an empty result.
type ParserError struct {
	URL       string
	Extractor string
	Reason    string
	Wrapped   error
}

func (e *ParserError) Error() string {
	msg := fmt.Sprintf("parser error for '%s'", e.URL)
	if e.Extractor != "" {
		msg += fmt.Sprintf(" (extractor %s)", e.Extractor)
	}
	msg += ": " + e.Reason
	if e.Wrapped != nil {
		msg += fmt.Sprintf(": %v", e.Wrapped)
	}
	return msg
}

func (e *ParserError) Unwrap() error {
	return e.Wrapped
}

// NewParserError creates a new parser error
func NewParserError(url, extractor, reason string, wrapped error) *ParserError {
	return &ParserError{
		URL:       url,
		Extractor: extractor,
		Reason:    reason,
		Wrapped:   wrapped,
	}
}

// IsNetworkError reports whether any error in the chain is a NetworkError
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsParserError reports whether any error in the chain is a ParserError
func IsParserError(err error) bool {
	var parseErr *ParserError
	return errors.As(err, &parseErr)
}

// CombineErrors combines multiple errors into a single error with formatted message
func CombineErrors(errs []error) error {
	var messages []string
	var kept []error
	for _, err := range errs {
		if err != nil {
			messages = append(messages, err.Error())
			kept = append(kept, err)
		}
	}

	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}

	return fmt.Errorf("multiple errors occurred: [%s]", strings.Join(messages, "; "))
}

// ErrorCollector helps collect multiple errors during processing
type ErrorCollector struct {
	errors []error
}

// Add adds an error to the collector
func (ec *ErrorCollector) Add(err error) {
	if err != nil {
		ec.errors = append(ec.errors, err)
	}
}

// AddWithContext adds an error with additional context
func (ec *ErrorCollector) AddWithContext(err error, context string) {
	if err != nil {
		ec.errors = append(ec.errors, WrapError(err, context))
	}
}

// HasErrors returns true if any errors were collected
func (ec *ErrorCollector) HasErrors() bool {
	return len(ec.errors) > 0
}

// Error returns a combined error from all collected errors
func (ec *ErrorCollector) Error() error {
	return CombineErrors(ec.errors)
}

// Errors returns all collected errors
func (ec *ErrorCollector) Errors() []error {
	return ec.errors
}
