package errors

import (
	"maps"
	"net/http"
	"slices"
	"strings"

	"countdown/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Timer-related errors
	ErrTimerNotFound = NewBaseError(
		http.StatusNotFound,
		"TIMER_NOT_FOUND",
		"Timer not found",
		"",
	)

	ErrTimerCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"TIMER_CREATION_FAILED",
		"Failed to create timer",
		"",
	)

	ErrTimerUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"TIMER_UPDATE_FAILED",
		"Failed to update timer",
		"",
	)

	ErrTimerConflict = NewBaseError(
		http.StatusConflict,
		"TIMER_CONFLICT",
		"Timer already exists",
		"",
	)

	// Session-related errors
	ErrSessionMissing = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_MISSING",
		"Authorization header is missing",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Invalid or expired session token",
		"",
	)

	// Request-related errors
	ErrShopRequired = NewBaseError(
		http.StatusBadRequest,
		"SHOP_REQUIRED",
		"Shop parameter is required",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// FieldErrors collects field-level validation messages keyed by field name.
// It is reported as ErrValidationFailed with the fields as details.
type FieldErrors map[string]string

// Add records msg for field unless the field already has a message.
func (f FieldErrors) Add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

// Set records msg for field, replacing an earlier message.
func (f FieldErrors) Set(field, msg string) {
	f[field] = msg
}

// Err returns f as an error, or nil when no field failed.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}

	return f
}

// Error implements the error interface
func (f FieldErrors) Error() string {
	return ErrValidationFailed.Message() + ": " + f.Details()
}

// HTTPCode returns the HTTP status code
func (f FieldErrors) HTTPCode() int {
	return ErrValidationFailed.HTTPCode()
}

// ErrorCode returns the business error code
func (f FieldErrors) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (f FieldErrors) Message() string {
	return ErrValidationFailed.Message()
}

// Details lists the failing fields in a stable order
func (f FieldErrors) Details() string {
	parts := make([]string, 0, len(f))
	for _, field := range slices.Sorted(maps.Keys(f)) {
		parts = append(parts, field+": "+f[field])
	}

	return strings.Join(parts, "; ")
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
