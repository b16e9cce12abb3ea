// Package apperror defines the application's error taxonomy and the mapping
// from error categories to HTTP responses. Handlers and services construct
// typed errors here instead of surfacing storage- or library-level failures
// directly; anything that falls outside the taxonomy is reported to callers
// as a generic 500.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType enumerates the categories of application errors.
type ErrorType int

const (
	// UnknownError is for unspecified errors.
	UnknownError ErrorType = iota
	// ValidationError represents malformed or missing required input.
	ValidationError
	// DuplicateKeyError represents a uniqueness conflict on insert.
	DuplicateKeyError
	// AuthenticationError represents a missing/invalid token or bad credentials.
	AuthenticationError
	// ForbiddenError represents a valid token used by the wrong owner.
	ForbiddenError
	// NotFoundError represents a resource id that does not exist.
	NotFoundError
	// DatabaseError represents an error originating from the database.
	DatabaseError
	// InternalError represents a generic internal server error.
	InternalError
)

// AppError is the application's error type. It carries the category used for
// HTTP mapping, a user-facing message, and an optional underlying error kept
// for logs only.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error satisfies the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error, enabling errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ValidationError, DuplicateKeyError:
		return http.StatusBadRequest
	case AuthenticationError:
		return http.StatusUnauthorized
	case ForbiddenError:
		// Ownership failures use 401, not 403: the response must be
		// indistinguishable from an invalid token so callers cannot probe
		// who owns a resource.
		return http.StatusUnauthorized
	case NotFoundError:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError with an explicit type.
func NewAppError(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

// NewValidationError creates a ValidationError.
func NewValidationError(message string, underlying error) *AppError {
	return NewAppError(ValidationError, message, underlying)
}

// NewDuplicateKeyError creates a DuplicateKeyError.
func NewDuplicateKeyError(message string, underlying error) *AppError {
	return NewAppError(DuplicateKeyError, message, underlying)
}

// NewAuthenticationError creates an AuthenticationError.
func NewAuthenticationError(message string, underlying error) *AppError {
	return NewAppError(AuthenticationError, message, underlying)
}

// NewForbiddenError creates a ForbiddenError.
func NewForbiddenError(message string, underlying error) *AppError {
	return NewAppError(ForbiddenError, message, underlying)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(message string, underlying error) *AppError {
	return NewAppError(NotFoundError, message, underlying)
}

// NewDatabaseError creates a DatabaseError.
func NewDatabaseError(message string, underlying error) *AppError {
	return NewAppError(DatabaseError, message, underlying)
}

// NewInternalError creates an InternalError.
func NewInternalError(message string, underlying error) *AppError {
	return NewAppError(InternalError, message, underlying)
}

// ErrorResponse is the JSON error payload returned to API clients.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToResponse converts an AppError to the payload sent to clients. Only the
// user-facing message is exposed; wrapped errors stay in logs. Server-side
// categories collapse to a generic message, and ownership failures are
// reported as "token invalid" so the body matches a failed token check.
func (e *AppError) ToResponse() ErrorResponse {
	switch e.Type {
	case ForbiddenError:
		return ErrorResponse{Error: "token invalid"}
	case DatabaseError, InternalError, UnknownError:
		return ErrorResponse{Error: "internal server error"}
	default:
		return ErrorResponse{Error: e.Message}
	}
}

// FromError attempts to convert a generic error to an *AppError.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}

// IsDuplicateKey checks if an error is a DuplicateKeyError.
func IsDuplicateKey(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == DuplicateKeyError
}

// IsAuthenticationError checks if an error is an AuthenticationError.
func IsAuthenticationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == AuthenticationError
}

// IsForbidden checks if an error is a ForbiddenError.
func IsForbidden(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ForbiddenError
}
