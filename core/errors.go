package core

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"message"`
}

// ValidationError is raised client-side before any request is sent.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// APIError is any non-2xx response from the backend, carrying the server's
// error envelope {statusCode, message, errors[]}.
type APIError struct {
	StatusCode int          `json:"statusCode"`
	Message    string       `json:"message"`
	Fields     []FieldError `json:"errors,omitempty"`
}

func (err APIError) Error() string {
	if err.Message != "" {
		return fmt.Sprintf("%d: %s", err.StatusCode, err.Message)
	}
	return http.StatusText(err.StatusCode)
}

// NewAPIError builds an APIError for responses whose body carried no
// decodable envelope.
func NewAPIError(statusCode int, msg string) *APIError {
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	return &APIError{StatusCode: statusCode, Message: msg}
}

func apiErrWithStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}

// IsAuthError reports a 401 that survived the refresh attempt; the session
// has been cleared and the caller should redirect to login.
func IsAuthError(err error) bool {
	return apiErrWithStatus(err, http.StatusUnauthorized)
}

// IsAuthorizationError reports a 403; the session is retained.
func IsAuthorizationError(err error) bool {
	return apiErrWithStatus(err, http.StatusForbidden)
}

func IsNotFound(err error) bool {
	return apiErrWithStatus(err, http.StatusNotFound)
}

// IsServerError reports a 5xx response or a network-level failure.
func IsServerError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	var valErr *ValidationError
	return !errors.As(err, &valErr)
}
