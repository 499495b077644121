// Package errors defines the closed set of application errors. Domain logic
// raises these typed errors; the HTTP boundary translates them into the JSON
// error envelope. Anything outside this set surfaces as a generic internal
// error.
package errors

import (
	"net/http"

	"siakad/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Stable business error code
	Message() string   // User-facing error message
	Details() any      // Optional structured details (e.g. per-field validation messages)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
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

// ErrorCode returns the stable business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns structured error details.
func (e *BaseError) Details() any {
	return e.details
}

// WithMessage returns a copy of the error carrying a more specific
// user-facing message while keeping the status and business code.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// WithDetails returns a copy of the error carrying structured details.
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// The closed error set. Login failure deliberately collapses "user not found"
// and "wrong password" into one message to prevent username enumeration.
var (
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"username atau password salah",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource already exists",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"unauthorized access",
	)

	ErrAccessTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"ACCESS_TOKEN_EXPIRED",
		"access token has expired",
	)

	ErrRefreshTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_EXPIRED",
		"refresh token has expired",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied for this role",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"invalid request data",
	)

	// Set-password token failures are collapsed into one message so the caller
	// cannot tell which verification step failed.
	ErrSetPasswordTokenExpired = NewBaseError(
		http.StatusBadRequest,
		"SET_PASSWORD_TOKEN_EXPIRED",
		"token kadaluwarsa, silahkan ulangi kembali",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
	)
)

// FieldError carries a single per-field validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError builds a ValidationFailed error carrying per-field messages.
func NewValidationError(fields []FieldError) *BaseError {
	return ErrValidationFailed.WithDetails(fields)
}
