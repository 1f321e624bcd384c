package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"trainboard/internal/model"
	"trainboard/internal/service"
)

// TrainHandler serves /trains.
type TrainHandler struct {
	svc    service.TrainService
	logger *slog.Logger
}

// NewTrainHandler creates a train handler.
func NewTrainHandler(svc service.TrainService, logger *slog.Logger) *TrainHandler {
	return &TrainHandler{svc: svc, logger: logger}
}

// List godoc
// @Summary List trains
// @Tags trains
// @Produce json
// @Success 200 {array} model.Train
// @Failure 500 {object} errors.ErrorResponse
// @Router /trains [get]
func (h *TrainHandler) List(c echo.Context) error {
	trains, err := h.svc.FindAll(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, trains)
}

// Get godoc
// @Summary Get train by id
// @Tags trains
// @Produce json
// @Param id path string true "Train ID"
// @Success 200 {object} model.Train
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /trains/{id} [get]
func (h *TrainHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	train, err := h.svc.FindOne(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if train == nil {
		return notFound("train")
	}
	return c.JSON(http.StatusOK, train)
}

// Create godoc
// @Summary Create train
// @Tags trains
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param train body model.TrainInput true "Train payload"
// @Success 201 {object} model.Train
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /trains [post]
func (h *TrainHandler) Create(c echo.Context) error {
	var in model.TrainInput
	if err := bindAndValidate(c, h.logger, &in); err != nil {
		return err
	}
	train, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, train)
}

// Update godoc
// @Summary Update train
// @Tags trains
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Train ID"
// @Param train body model.TrainPatch true "Fields to change"
// @Success 200 {object} model.Train
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /trains/{id} [patch]
func (h *TrainHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var patch model.TrainPatch
	if err := bindAndValidate(c, h.logger, &patch); err != nil {
		return err
	}
	train, err := h.svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if train == nil {
		return notFound("train")
	}
	return c.JSON(http.StatusOK, train)
}

// Delete godoc
// @Summary Delete train
// @Description Refused with 409 while any schedule uses the train.
// @Tags trains
// @Security BearerAuth
// @Param id path string true "Train ID"
// @Success 204
// @Failure 409 {object} errors.ErrorResponse
// @Router /trains/{id} [delete]
func (h *TrainHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Remove(c.Request().Context(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}
