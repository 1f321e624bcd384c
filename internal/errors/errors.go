package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a record required by the operation does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a unique field (email, station name/code, train number) is taken.
	ErrConflict = errors.New("record already exists")
	// ErrInvalidReference is returned when a schedule points at a train or station that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
	// ErrInvalidCredentials is returned for any failed login. It never says which part was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthorized is returned when a token is missing, invalid or revoked.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the caller's role does not allow the operation.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError carries field-level messages for a rejected input.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ReferenceGuardError is returned when a station or train is still used by schedules.
type ReferenceGuardError struct {
	Entity string
	Count  int64
}

func (e *ReferenceGuardError) Error() string {
	noun := "schedules"
	if e.Count == 1 {
		noun = "schedule"
	}
	return fmt.Sprintf("cannot delete %s: referenced by %d %s", e.Entity, e.Count, noun)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Code:   e.Code,
		Fields: e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		httpErr := NewHTTPError(http.StatusBadRequest, "validation failed", "VALIDATION_ERROR")
		httpErr.Fields = validationErr.Fields
		return httpErr
	}

	var guardErr *ReferenceGuardError
	if errors.As(err, &guardErr) {
		return NewHTTPError(http.StatusConflict, guardErr.Error(), "REFERENCED")
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrConflict):
		return NewHTTPError(http.StatusConflict, err.Error(), "CONFLICT")
	case errors.Is(err, ErrInvalidReference):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_REFERENCE")
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
