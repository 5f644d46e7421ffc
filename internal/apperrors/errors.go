// Package apperrors defines the domain error taxonomy shared by services and
// mapped to HTTP status codes at the API boundary.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain failure
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
)

// HTTPStatus returns the HTTP status code for the kind
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain failure carrying a kind and a user-facing message
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a domain error with the given kind and message
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap annotates an underlying error with a kind and message
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation creates a bad-request error
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// Unauthenticated creates an authentication failure
func Unauthenticated(message string) *Error {
	return New(KindUnauthenticated, message)
}

// Forbidden creates an authorization failure
func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

// NotFound creates a missing-resource error
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Conflict creates a uniqueness-violation error
func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// Internal wraps an unclassified error
func Internal(err error) *Error {
	return Wrap(KindInternal, "internal server error", err)
}

// KindOf extracts the kind from an error chain, defaulting to KindInternal
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf extracts the user-facing message from an error chain. Unclassified
// errors surface a generic message so internal detail never leaks to clients.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
