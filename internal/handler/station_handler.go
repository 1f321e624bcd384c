package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"trainboard/internal/model"
	"trainboard/internal/service"
)

// StationHandler serves /stations.
type StationHandler struct {
	svc    service.StationService
	logger *slog.Logger
}

// NewStationHandler creates a station handler.
func NewStationHandler(svc service.StationService, logger *slog.Logger) *StationHandler {
	return &StationHandler{svc: svc, logger: logger}
}

// List godoc
// @Summary List stations
// @Tags stations
// @Produce json
// @Success 200 {array} model.Station
// @Failure 500 {object} errors.ErrorResponse
// @Router /stations [get]
func (h *StationHandler) List(c echo.Context) error {
	stations, err := h.svc.FindAll(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, stations)
}

// Get godoc
// @Summary Get station by id
// @Tags stations
// @Produce json
// @Param id path string true "Station ID"
// @Success 200 {object} model.Station
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /stations/{id} [get]
func (h *StationHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	station, err := h.svc.FindOne(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if station == nil {
		return notFound("station")
	}
	return c.JSON(http.StatusOK, station)
}

// Create godoc
// @Summary Create station
// @Tags stations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param station body model.StationInput true "Station payload"
// @Success 201 {object} model.Station
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /stations [post]
func (h *StationHandler) Create(c echo.Context) error {
	var in model.StationInput
	if err := bindAndValidate(c, h.logger, &in); err != nil {
		return err
	}
	station, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, station)
}

// Update godoc
// @Summary Update station
// @Tags stations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Station ID"
// @Param station body model.StationPatch true "Fields to change"
// @Success 200 {object} model.Station
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /stations/{id} [patch]
func (h *StationHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var patch model.StationPatch
	if err := bindAndValidate(c, h.logger, &patch); err != nil {
		return err
	}
	station, err := h.svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if station == nil {
		return notFound("station")
	}
	return c.JSON(http.StatusOK, station)
}

// Delete godoc
// @Summary Delete station
// @Description Refused with 409 while any schedule departs from or arrives at the station.
// @Tags stations
// @Security BearerAuth
// @Param id path string true "Station ID"
// @Success 204
// @Failure 409 {object} errors.ErrorResponse
// @Router /stations/{id} [delete]
func (h *StationHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Remove(c.Request().Context(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}
