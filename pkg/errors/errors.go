package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// HTTPError is an error that carries the HTTP status and the message shown to the client.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError creates an HTTPError. code doubles as the HTTP status.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: code,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// WithMessage returns a copy of e with a different client message.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	cp := *e
	cp.Message = message
	return &cp
}

// ValidationError maps field names to the message shown next to the field.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError from a field -> message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// StatusCode is always 400 for validation failures.
func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}
