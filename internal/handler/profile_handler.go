package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/domain"
	"github.com/portfolio/backend/internal/service"
)

// ProfileHandler handles HTTP requests for the site profile
type ProfileHandler struct {
	service service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfile godoc
// @Summary      Get profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.Profile}
// @Failure      404  {object}  common.APIResponse
// @Router       /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile()
	if err != nil {
		if errors.Is(err, common.ErrProfileNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Profile not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}

	common.SuccessResponse(c, profile, nil)
}

// UpdateProfile godoc
// @Summary      Update profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.UpdateProfileRequest  true  "Profile"
// @Success      200  {object}  common.APIResponse{data=domain.Profile}
// @Failure      401  {object}  common.APIResponse
// @Router       /admin/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	profile, err := h.service.UpdateProfile(&req)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update profile", err)
		return
	}

	common.SuccessResponse(c, profile, nil)
}
