// Package errors provides a lightweight structured error type (DocugenError)
// for category-based classification across the generation pipeline and CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a Docugen error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Generation capability errors
	CategoryGeneration ErrorCategory = "generation"
	CategorySchema     ErrorCategory = "schema"

	// External system integration errors
	CategoryNetwork ErrorCategory = "network"
	CategoryExport  ErrorCategory = "export"

	// Runtime and infrastructure errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// DocugenError is a structured error with category, retryability, and context
type DocugenError struct {
	Category  ErrorCategory `json:"category"`
	Severity  ErrorSeverity `json:"severity"`
	Message   string        `json:"message"`
	Cause     error         `json:"cause,omitempty"`
	Retryable bool          `json:"retryable"`
	Context   ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for DocugenError
type ContextFields map[string]any

// Error implements the error interface
func (e *DocugenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *DocugenError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *DocugenError) WithContext(key string, value any) *DocugenError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// WithSeverity overrides the severity of the error
func (e *DocugenError) WithSeverity(severity ErrorSeverity) *DocugenError {
	e.Severity = severity
	return e
}

// New creates a new DocugenError
func New(category ErrorCategory, severity ErrorSeverity, message string) *DocugenError {
	return &DocugenError{
		Category:  category,
		Severity:  severity,
		Message:   message,
		Retryable: false,
	}
}

// Wrap creates a new DocugenError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *DocugenError {
	return &DocugenError{
		Category:  category,
		Severity:  severity,
		Message:   message,
		Cause:     err,
		Retryable: false,
	}
}

// WrapRetryable creates a new retryable DocugenError that wraps an existing error
func WrapRetryable(err error, category ErrorCategory, severity ErrorSeverity, message string) *DocugenError {
	return &DocugenError{
		Category:  category,
		Severity:  severity,
		Message:   message,
		Cause:     err,
		Retryable: true,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if dge, ok := err.(*DocugenError); ok {
		return dge.Category == category
	}
	return false
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	if dge, ok := err.(*DocugenError); ok {
		return dge.Retryable
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a DocugenError
func GetCategory(err error) ErrorCategory {
	if dge, ok := err.(*DocugenError); ok {
		return dge.Category
	}
	return CategoryInternal
}
