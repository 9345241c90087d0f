package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Domain errors
	ErrorTypeValidation   ErrorType = "VALIDATION"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypePageNotFound ErrorType = "PAGE_NOT_FOUND"

	// Application errors
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError is the application error carried from the core logic to the
// HTTP boundary. The core never deals in status codes; HTTPStatus is the
// boundary translation, resolved once at construction.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Cause      error     `json:"-"`
	HTTPStatus int       `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// Constructor functions for the error taxonomy

// NewValidationError creates a validation error (malformed or
// out-of-domain input). Message is client-facing.
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not found error for the named resource.
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("%s not found.", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewPageNotFoundError creates the pagination out-of-range error. Distinct
// from NotFound so callers can tell a bad identifier from a bad page.
func NewPageNotFoundError() *AppError {
	return &AppError{
		Type:       ErrorTypePageNotFound,
		Message:    "Page not found.",
		HTTPStatus: http.StatusNotFound,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// Helper functions

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsPageNotFound checks if an error is a pagination out-of-range error
func IsPageNotFound(err error) bool {
	return IsType(err, ErrorTypePageNotFound)
}

// Wrap wraps an error with additional context. AppErrors keep their type
// and status in a new value, leaving the original untouched; anything
// else becomes an internal error.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	if appErr := GetAppError(err); appErr != nil {
		return &AppError{
			Type:       appErr.Type,
			Message:    fmt.Sprintf("%s: %s", message, appErr.Message),
			Cause:      err,
			HTTPStatus: appErr.HTTPStatus,
		}
	}

	return NewInternalError(message).WithCause(err)
}
