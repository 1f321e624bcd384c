package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"trainboard/internal/errors"
)

// respondError converts a service error into an HTTP error. Server-side
// failures are logged and their details withheld from the client.
func respondError(c echo.Context, logger *slog.Logger, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		logger.ErrorContext(c.Request().Context(), "request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.Any("error", err),
		)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  "BAD_REQUEST",
	})
}

// notFound answers for a service lookup that came back empty.
func notFound(entity string) error {
	httpErr := errors.MapErrorToHTTP(errors.ErrNotFound)
	httpErr.Message = entity + " not found"
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// bindAndValidate decodes the body into dst and runs the registered validator.
func bindAndValidate(c echo.Context, logger *slog.Logger, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(dst); err != nil {
		return respondError(c, logger, err)
	}
	return nil
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, badRequest("invalid id")
	}
	return id, nil
}
