package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"trainboard/internal/auth"
	"trainboard/internal/model"
	"trainboard/internal/service"
)

// ScheduleHandler serves /schedules.
type ScheduleHandler struct {
	svc    service.ScheduleService
	logger *slog.Logger
}

// NewScheduleHandler creates a schedule handler.
func NewScheduleHandler(svc service.ScheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, logger: logger}
}

// List godoc
// @Summary List schedules
// @Description Search matches a substring of either station name, the train number or the train name.
// @Tags schedules
// @Produce json
// @Param search query string false "Substring to match"
// @Param sort query string false "Ascending sort key, e.g. departure_time or price"
// @Param from query string false "Departure station ID"
// @Param to query string false "Arrival station ID"
// @Success 200 {array} model.TrainSchedule
// @Failure 400 {object} errors.ErrorResponse
// @Router /schedules [get]
func (h *ScheduleHandler) List(c echo.Context) error {
	schedules, err := h.svc.FindAll(c.Request().Context(), service.ScheduleQuery{
		Search:        c.QueryParam("search"),
		Sort:          c.QueryParam("sort"),
		FromStationID: c.QueryParam("from"),
		ToStationID:   c.QueryParam("to"),
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, schedules)
}

// Get godoc
// @Summary Get schedule by id
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} model.TrainSchedule
// @Failure 404 {object} errors.ErrorResponse
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	schedule, err := h.svc.FindOne(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if schedule == nil {
		return notFound("schedule")
	}
	return c.JSON(http.StatusOK, schedule)
}

// Create godoc
// @Summary Create schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schedule body model.ScheduleInput true "Schedule payload"
// @Success 201 {object} model.TrainSchedule
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /schedules [post]
func (h *ScheduleHandler) Create(c echo.Context) error {
	var in model.ScheduleInput
	if err := bindAndValidate(c, h.logger, &in); err != nil {
		return err
	}

	var createdBy *uuid.UUID
	if claims := auth.ClaimsFrom(c); claims != nil {
		if id, err := claims.ProfileID(); err == nil {
			createdBy = &id
		}
	}

	schedule, err := h.svc.Create(c.Request().Context(), in, createdBy)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, schedule)
}

// Update godoc
// @Summary Update schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param schedule body model.SchedulePatch true "Fields to change"
// @Success 200 {object} model.TrainSchedule
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /schedules/{id} [patch]
func (h *ScheduleHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var patch model.SchedulePatch
	if err := bindAndValidate(c, h.logger, &patch); err != nil {
		return err
	}
	schedule, err := h.svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if schedule == nil {
		return notFound("schedule")
	}
	return c.JSON(http.StatusOK, schedule)
}

// Delete godoc
// @Summary Delete schedule
// @Tags schedules
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 204
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Remove(c.Request().Context(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}
