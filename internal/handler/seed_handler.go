package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"trainboard/internal/seed"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	load   func(ctx context.Context) (seed.Result, error)
	logger *slog.Logger
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(gormDB *gorm.DB, logger *slog.Logger) *SeedHandler {
	return &SeedHandler{
		load: func(ctx context.Context) (seed.Result, error) {
			return seed.Reference(ctx, gormDB)
		},
		logger: logger,
	}
}

// SeedResponse represents the seed response.
type SeedResponse struct {
	Message string `json:"message"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
}

// SeedReference godoc
// @Summary Load reference stations and trains
// @Description Inserts the built-in stations and trains. Rows that already exist are skipped.
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/seed [post]
func (h *SeedHandler) SeedReference(c echo.Context) error {
	res, err := h.load(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	h.logger.InfoContext(c.Request().Context(), "reference data seeded",
		slog.Int("created", res.Created),
		slog.Int("skipped", res.Skipped),
	)
	return c.JSON(http.StatusOK, SeedResponse{
		Message: "reference data loaded",
		Created: res.Created,
		Skipped: res.Skipped,
	})
}
