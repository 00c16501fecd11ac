// Package apperror provides structured error handling.
// All workflow errors must use AppError so the façade can render them uniformly.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// Infrastructure errors (5xx)
	CodeInternal       = "INTERNAL_ERROR"
	CodeUpstreamLookup = "UPSTREAM_LOOKUP_ERROR"

	// Workflow errors
	CodeWorkflow   = "WORKFLOW_ERROR"
	CodeValidation = "VALIDATION_ERROR"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"
)

// AppError is the standard error type for the service.
// It implements error interface and provides structured details for logging.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description, surfaced to clients
	Message string `json:"message"`

	// Details contains additional context (upstream status, truncated body, ...)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// --- Factory functions ---

// NewNotFound creates a not found error (404). The message is surfaced verbatim,
// e.g. "zip code not found".
func NewNotFound(message string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    message,
		HTTPStatus: http.StatusNotFound,
	}
}

// NewUpstreamLookup creates an error for a failed call to a remote dependency (502).
// status is the upstream HTTP status, 0 when no response was received.
func NewUpstreamLookup(upstream string, status int, body string, cause error) *AppError {
	msg := fmt.Sprintf("%s request failed", upstream)
	if status > 0 {
		msg = fmt.Sprintf("%s request failed with status %d", upstream, status)
	} else if cause != nil {
		msg = fmt.Sprintf("%s request failed: %v", upstream, cause)
	}

	e := &AppError{
		Code:       CodeUpstreamLookup,
		Message:    msg,
		HTTPStatus: http.StatusBadGateway,
		Err:        cause,
		Details:    map[string]any{"upstream": upstream},
	}
	if status > 0 {
		e.Details["status"] = status
	}
	if body != "" {
		e.Details["body"] = body
	}
	return e
}

// NewValidation creates a validation error (400)
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewWorkflow wraps an unexpected failure inside the search workflow (500).
func NewWorkflow(err error) *AppError {
	msg := "workflow failed"
	if err != nil {
		msg = err.Error()
	}
	return &AppError{
		Code:       CodeWorkflow,
		Message:    msg,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewInternal creates an internal server error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// --- Helper functions ---

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatus returns appropriate HTTP status for any error
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeNotFound
	}
	return false
}

// IsUpstreamLookup checks if error is CodeUpstreamLookup
func IsUpstreamLookup(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeUpstreamLookup
	}
	return false
}

// IsValidation checks if error is CodeValidation
func IsValidation(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeValidation
	}
	return false
}

// Ensure wraps any error into an AppError, classifying unknown errors as workflow failures.
func Ensure(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return NewWorkflow(err)
}
