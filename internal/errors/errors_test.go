package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped conflict", fmt.Errorf("create station: %w", ErrConflict), http.StatusConflict, "CONFLICT"},
		{"invalid reference", ErrInvalidReference, http.StatusBadRequest, "INVALID_REFERENCE"},
		{"bad credentials", ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"referenced", &ReferenceGuardError{Entity: "station", Count: 2}, http.StatusConflict, "REFERENCED"},
		{"unknown", fmt.Errorf("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, got.StatusCode)
			assert.Equal(t, tt.code, got.Code)
		})
	}
}

func TestMapErrorToHTTP_HidesInternalDetails(t *testing.T) {
	got := MapErrorToHTTP(fmt.Errorf("dial tcp 10.0.0.5:5432: connection refused"))
	assert.Equal(t, "internal server error", got.Message)
}

func TestMapErrorToHTTP_ValidationFields(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"code": "is required", "name": "is required"}}

	got := MapErrorToHTTP(fmt.Errorf("create: %w", err))

	assert.Equal(t, http.StatusBadRequest, got.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", got.Code)
	assert.Equal(t, err.Fields, got.ToErrorResponse().Fields)
	assert.Equal(t, "validation failed: code: is required; name: is required", err.Error())
}

func TestReferenceGuardError_Message(t *testing.T) {
	assert.Equal(t, "cannot delete train: referenced by 1 schedule", (&ReferenceGuardError{Entity: "train", Count: 1}).Error())
	assert.Equal(t, "cannot delete station: referenced by 3 schedules", (&ReferenceGuardError{Entity: "station", Count: 3}).Error())
}
