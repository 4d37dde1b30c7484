package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"finplanner/internal/dto"
	"finplanner/internal/errors"
	"finplanner/internal/models"
	"finplanner/internal/repositories"
)

// ProfileHandler handles user financial profile requests
type ProfileHandler struct {
	profileRepo repositories.ProfileRepositoryInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileRepo repositories.ProfileRepositoryInterface) *ProfileHandler {
	return &ProfileHandler{
		profileRepo: profileRepo,
	}
}

// GetProfile retrieves the profile for the requested user
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileRepo.GetByUserID(userIDFromRequest(c))
	if err != nil {
		if err == repositories.ErrProfileNotFound {
			return SendError(c, errors.ProfileNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpsertProfile creates the profile or updates the existing one for the user
func (h *ProfileHandler) UpsertProfile(c echo.Context) error {
	var req dto.UpsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile := &models.UserProfile{
		UserID:              req.UserID,
		Name:                req.Name,
		Age:                 req.Age,
		MonthlyIncome:       req.MonthlyIncome,
		RiskTolerance:       req.RiskTolerance,
		PreferredCurrency:   req.PreferredCurrency,
		NotificationEnabled: true,
	}
	if profile.UserID == "" {
		profile.UserID = userIDFromRequest(c)
	}
	if req.NotificationEnabled != nil {
		profile.NotificationEnabled = *req.NotificationEnabled
	}

	if err := h.profileRepo.Upsert(profile); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// DeleteProfile removes the profile for the requested user
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	if err := h.profileRepo.Delete(userIDFromRequest(c)); err != nil {
		if err == repositories.ErrProfileNotFound {
			return SendError(c, errors.ProfileNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
