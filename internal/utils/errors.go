package utils

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/lib/pq"

	"newsboard/internal/constants"
)

// Custom error types for the application. The core produces exactly two
// domain error kinds: validation (400) and not-found (404); everything else
// is the internal fallthrough.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrValidation     = errors.New("validation error")
	ErrInternalServer = errors.New("internal server error")
)

// AppError represents an application error with an HTTP status code and a
// user-facing message.
type AppError struct {
	Err        error  // The underlying error kind
	StatusCode int    // HTTP status code
	Message    string // User-facing error message
}

// Error implements the error interface
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a 400-class error. Shape and type failures all
// carry the same generic message.
func NewValidationError(message string) *AppError {
	return &AppError{
		Err:        ErrValidation,
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

// NewBadRequestError creates a 400-class error with the generic message.
func NewBadRequestError() *AppError {
	return NewValidationError(constants.MsgBadRequest)
}

// NewNotFoundError creates a 404-class error with an operation-specific
// message.
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Err:        ErrNotFound,
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

// NewInternalServerError creates a 500-class error. The underlying cause is
// logged by the caller, never exposed to the client.
func NewInternalServerError(err error) *AppError {
	return &AppError{
		Err:        ErrInternalServer,
		StatusCode: http.StatusInternalServerError,
		Message:    constants.MsgInternalServerError,
	}
}

// ParseError translates an arbitrary error into an AppError. Storage-level
// integrity violations (malformed key text, foreign key or not-null
// violations) are client errors at this boundary, so they map to the
// validation kind rather than leaking a storage-specific code.
func ParseError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NewNotFoundError(constants.MsgNotFound)
	case errors.Is(err, ErrValidation):
		return NewBadRequestError()
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constants.PGInvalidTextRepresentation,
			constants.PGNotNullViolation,
			constants.PGForeignKeyViolation:
			return NewBadRequestError()
		}
	}

	if errors.Is(err, sql.ErrNoRows) || strings.Contains(strings.ToLower(err.Error()), "no rows") {
		return NewNotFoundError(constants.MsgNotFound)
	}

	return NewInternalServerError(err)
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode == http.StatusNotFound
	}
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return errors.Is(appErr.Err, ErrValidation)
	}
	return errors.Is(err, ErrValidation)
}

// StatusCode returns the HTTP status code for an error
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
