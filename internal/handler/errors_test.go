package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainboard/internal/errors"
)

func TestNotFound(t *testing.T) {
	err := notFound("station")

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
	assert.Equal(t, errors.ErrorResponse{Error: "station not found", Code: "NOT_FOUND"}, httpErr.Message)
}

func TestBadRequest(t *testing.T) {
	var httpErr *echo.HTTPError
	require.ErrorAs(t, badRequest("invalid id"), &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Equal(t, errors.ErrorResponse{Error: "invalid id", Code: "BAD_REQUEST"}, httpErr.Message)
}
