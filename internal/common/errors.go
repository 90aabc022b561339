package common

import (
	"errors"
	"fmt"
)

// Common sentinel errors used across the application
var (
	// ErrUnsupportedFormat indicates a file extension with no reader/writer
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrMissingColumn indicates a required column is absent from the input table
	ErrMissingColumn = errors.New("required column not found")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context information
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
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
	return fmt.Sprintf("validation failed for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ConfigurationError represents configuration-related errors. It is fatal and
// aborts the batch before any API call is made.
type ConfigurationError struct {
	Section string
	Field   string
	Reason  string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Section != "" && e.Field != "" {
		return fmt.Sprintf("configuration error in section '%s', field '%s': %s", e.Section, e.Field, e.Reason)
	} else if e.Section != "" {
		return fmt.Sprintf("configuration error in section '%s': %s", e.Section, e.Reason)
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(section, field, reason string) *ConfigurationError {
	return &ConfigurationError{
		Section: section,
		Field:   field,
		Reason:  reason,
	}
}

// NewConfigurationErrorWithCause creates a configuration error carrying an
// underlying sentinel or cause for errors.Is matching.
func NewConfigurationErrorWithCause(section, field, reason string, err error) *ConfigurationError {
	return &ConfigurationError{
		Section: section,
		Field:   field,
		Reason:  reason,
		Err:     err,
	}
}

// InputError represents a fatal failure to read the input table
// (file missing, unreadable, malformed container).
type InputError struct {
	Path    string
	Reason  string
	Wrapped error
}

func (e *InputError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("input error for '%s': %s: %v", e.Path, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("input error for '%s': %s", e.Path, e.Reason)
}

func (e *InputError) Unwrap() error {
	return e.Wrapped
}

// NewInputError creates a new input error
func NewInputError(path, reason string, wrapped error) *InputError {
	return &InputError{
		Path:    path,
		Reason:  reason,
		Wrapped: wrapped,
	}
}

// OutputError represents a fatal failure to write the output table. It is
// raised after all enrichment work has completed.
type OutputError struct {
	Path    string
	Reason  string
	Wrapped error
}

func (e *OutputError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("output error for '%s': %s: %v", e.Path, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("output error for '%s': %s", e.Path, e.Reason)
}

func (e *OutputError) Unwrap() error {
	return e.Wrapped
}

// NewOutputError creates a new output error
func NewOutputError(path, reason string, wrapped error) *OutputError {
	return &OutputError{
		Path:    path,
		Reason:  reason,
		Wrapped: wrapped,
	}
}

// NetworkError represents network-related errors. Per-URL network failures are
// resolved locally into an error-marked result and never abort the batch.
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
