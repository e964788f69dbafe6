package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeUnauthorized indicates the backend rejected the bearer token (HTTP 401).
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeBackend indicates the backend reported a failure with a message of its own.
	ErrCodeBackend ErrorCode = "backend"
	// ErrCodeConnection indicates a transport failure: no response was received.
	ErrCodeConnection ErrorCode = "connection"
	// ErrCodeDecode indicates a response body that could not be decoded.
	ErrCodeDecode ErrorCode = "decode"
	// ErrCodeValidation indicates invalid input data rejected before any request was made.
	ErrCodeValidation ErrorCode = "validation"
)

// AppError represents a structured application error with a code, message, and optional cause.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Unauthorized creates a new Unauthorized error.
func Unauthorized(message string) *AppError {
	return &AppError{
		Code:    ErrCodeUnauthorized,
		Message: message,
	}
}

// Backend creates a new Backend error carrying the backend's own message.
func Backend(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBackend,
		Message: message,
	}
}

// Backendf creates a new Backend error with formatted message.
func Backendf(format string, args ...any) *AppError {
	return &AppError{
		Code:    ErrCodeBackend,
		Message: fmt.Sprintf(format, args...),
	}
}

// Connection creates a new Connection error.
func Connection(message string) *AppError {
	return &AppError{
		Code:    ErrCodeConnection,
		Message: message,
	}
}

// Decode creates a new Decode error.
func Decode(message string) *AppError {
	return &AppError{
		Code:    ErrCodeDecode,
		Message: message,
	}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Field:   field,
	}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsUnauthorized checks if an error is an Unauthorized error.
func IsUnauthorized(err error) bool {
	return isCode(err, ErrCodeUnauthorized)
}

// IsBackend checks if an error is a Backend error.
func IsBackend(err error) bool {
	return isCode(err, ErrCodeBackend)
}

// IsConnection checks if an error is a Connection error.
func IsConnection(err error) bool {
	return isCode(err, ErrCodeConnection)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// UserMessage extracts the human-readable message from any error.
// AppError messages are returned as-is; anything else falls back to the
// provided default so raw transport errors never reach a caller verbatim.
func UserMessage(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
