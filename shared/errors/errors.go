package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Validation codes reported by the entity validators.
const (
	CodeMissingProperty = "NOT_CONTAIN_NEEDED_PROPERTY"
	CodeTypeMismatch    = "NOT_MEET_DATA_TYPE_SPECIFICATION"
	CodeLimitExceeded   = "LIMIT_EXCEEDED"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// NotFoundError is returned when a thread, comment or user does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// AuthorizationError is returned when the caller does not own the resource.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ValidationError describes a malformed creation payload.
// Code is prefixed with the entity, e.g. "CREATE_THREAD.NOT_CONTAIN_NEEDED_PROPERTY".
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFound(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func NewAuthorization(format string, args ...any) error {
	return &AuthorizationError{Message: fmt.Sprintf(format, args...)}
}

// Check if err is instance of T for custom error types
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// StatusCode maps err to the HTTP status the transport layer should answer with.
func StatusCode(err error) int {
	var withCode *ErrorWithStatusCode
	var notFound *NotFoundError
	var authz *AuthorizationError
	var validation *ValidationError
	switch {
	case errors.As(err, &withCode):
		return withCode.StatusCode
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &authz):
		return http.StatusForbidden
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
