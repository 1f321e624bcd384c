package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"trainboard/internal/auth"
	"trainboard/internal/errors"
	"trainboard/internal/model"
	"trainboard/internal/service"
)

// ProfileHandler serves /profiles.
type ProfileHandler struct {
	svc    service.ProfileService
	logger *slog.Logger
}

// NewProfileHandler creates a profile handler.
func NewProfileHandler(svc service.ProfileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, logger: logger}
}

// List godoc
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Profile
// @Failure 403 {object} errors.ErrorResponse
// @Router /profiles [get]
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.svc.FindAll(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, profiles)
}

// Get godoc
// @Summary Get profile by id
// @Description Users may read their own profile; admins any profile.
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} model.Profile
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profiles/{id} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := authorizeProfile(c, id); err != nil {
		return respondError(c, h.logger, err)
	}
	profile, err := h.svc.FindOne(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if profile == nil {
		return notFound("profile")
	}
	return c.JSON(http.StatusOK, profile)
}

// Create godoc
// @Summary Create profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body model.ProfileInput true "Profile payload"
// @Success 201 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /profiles [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	var in model.ProfileInput
	if err := bindAndValidate(c, h.logger, &in); err != nil {
		return err
	}
	profile, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, profile)
}

// Update godoc
// @Summary Update profile
// @Description Users may update their own profile except for the role.
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param profile body model.ProfilePatch true "Fields to change"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profiles/{id} [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := authorizeProfile(c, id); err != nil {
		return respondError(c, h.logger, err)
	}
	var patch model.ProfilePatch
	if err := bindAndValidate(c, h.logger, &patch); err != nil {
		return err
	}
	if patch.Role != nil && !auth.ClaimsFrom(c).IsAdmin() {
		return respondError(c, h.logger, errors.ErrForbidden)
	}

	profile, err := h.svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if profile == nil {
		return notFound("profile")
	}
	return c.JSON(http.StatusOK, profile)
}

// Delete godoc
// @Summary Delete profile
// @Tags profiles
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 204
// @Router /profiles/{id} [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Remove(c.Request().Context(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// authorizeProfile lets admins act on any profile and users on their own.
func authorizeProfile(c echo.Context, id uuid.UUID) error {
	claims := auth.ClaimsFrom(c)
	if claims == nil {
		return errors.ErrUnauthorized
	}
	if claims.IsAdmin() {
		return nil
	}
	if own, err := claims.ProfileID(); err != nil || own != id {
		return errors.ErrForbidden
	}
	return nil
}
