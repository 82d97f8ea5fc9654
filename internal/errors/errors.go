// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrRateLimited indicates a user sent messages faster than the
	// minimum allowed interval.
	ErrRateLimited = errors.New("rate limited")

	// ErrTemplateNotFound indicates the response catalog has no entry for
	// the requested language and category pair.
	ErrTemplateNotFound = errors.New("response template not found")

	// ErrMissingPlaceholder indicates a template references a placeholder
	// with no corresponding value.
	ErrMissingPlaceholder = errors.New("missing placeholder value")

)

// TemplateError reports a response catalog rendering failure with the
// language and category that triggered it. Catalog rendering failures mean
// the static configuration is incomplete for a supported language, so they
// propagate to the caller instead of degrading to an empty reply.
type TemplateError struct {
	Language string
	Category string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template error (lang=%s, category=%s): %v", e.Language, e.Category, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// NewTemplateError creates a new template error.
func NewTemplateError(language, category string, err error) *TemplateError {
	return &TemplateError{
		Language: language,
		Category: category,
		Err:      err,
	}
}

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
