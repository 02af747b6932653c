// Package errors classifies the outcomes the catalog services can signal.
// Every request-level failure is one of a small taxonomy: missing field,
// invalid enum token, duplicate name, or no such entry. An empty listing is
// not an error; services return an empty slice and the delivery layer maps
// it to a no-content response.
package errors

import (
	"fmt"
	"net/http"

	"fogbuilds/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Fixed request-validation errors. The messages are part of the observable
// contract and match the catalog API's historical wording exactly.
var (
	// ErrNoTypeGiven signals a list-by-type request without a type field.
	ErrNoTypeGiven = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELD",
		"No type given",
		"",
	)

	// ErrInvalidTypeGiven signals a list-by-type request whose type token
	// is outside the CharacterType set.
	ErrInvalidTypeGiven = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TYPE",
		"Invalid type given",
		"",
	)

	// ErrMissingData signals a create request lacking a required field.
	ErrMissingData = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELD",
		"Some data missing from request.",
		"",
	)

	// ErrInvalidCharacterType signals a create or update carrying an
	// unparseable CharacterType value.
	ErrInvalidCharacterType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TYPE",
		"The CharacterType supplied was invalid",
		"",
	)
)

// NewDuplicateName reports that a catalog entry of the given variant
// already holds the requested name. Duplicate names are rejected with 400
// rather than 409, preserving the API's historical behavior.
func NewDuplicateName(variant string, name string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_NAME",
		fmt.Sprintf("A %s already exists with the name, %s", variant, name),
		"",
	)
}

// NewDuplicatePower reports that a killer already holds the requested
// power name.
func NewDuplicatePower(powerName string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_NAME",
		fmt.Sprintf("A killer already exists with the power, %s", powerName),
		"",
	)
}

// NewNoSuchEntry reports that no entry of the given variant exists under
// the requested id.
func NewNoSuchEntry(variant string, id int64) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"NO_SUCH_ENTRY",
		fmt.Sprintf("There is no %s with id, %d", variant, id),
		"",
	)
}

// NewNoSuchComponent reports that a loadout slot referenced a scored
// component name that does not exist.
func NewNoSuchComponent(kind string, name string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"NO_SUCH_ENTRY",
		fmt.Sprintf("There is no %s with the name, %s", kind, name),
		"",
	)
}

// General errors.
var (
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing
// the AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
