// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Validation error", Fields: fields}
}

// Error is a typed, status-aware domain error returned by the service layer.
// Handlers map it to the response envelope via errors.As, so business rules
// decide the HTTP status without handlers string-matching messages.
type Error struct {
	Status int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func Invalid(msg string) *Error      { return &Error{Status: http.StatusBadRequest, Detail: msg} }
func Unauthorized(msg string) *Error { return &Error{Status: http.StatusUnauthorized, Detail: msg} }
func Forbidden(msg string) *Error    { return &Error{Status: http.StatusForbidden, Detail: msg} }
func NotFound(msg string) *Error     { return &Error{Status: http.StatusNotFound, Detail: msg} }
func Conflict(msg string) *Error     { return &Error{Status: http.StatusConflict, Detail: msg} }

// Internal wraps an unexpected error. The cause is kept for logging but the
// detail sent to clients stays generic.
func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Detail: "Internal server error", Err: err}
}

// StatusOf extracts the HTTP status from a typed error, defaulting to 500.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}
