package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/domain"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/ginutil"
)

// ResumeHandler handles HTTP requests for experience and education
type ResumeHandler struct {
	service service.ResumeService
}

// NewResumeHandler creates a new ResumeHandler
func NewResumeHandler(service service.ResumeService) *ResumeHandler {
	return &ResumeHandler{service: service}
}

// ListExperience godoc
// @Summary      List experience entries
// @Tags         resume
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]domain.Experience}
// @Router       /experience [get]
func (h *ResumeHandler) ListExperience(c *gin.Context) {
	entries, err := h.service.ListExperience()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load experience", err)
		return
	}
	common.SuccessResponse(c, entries, nil)
}

// CreateExperience godoc
// @Summary      Create an experience entry
// @Tags         resume
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.CreateExperienceRequest  true  "Experience"
// @Success      201  {object}  common.APIResponse{data=domain.Experience}
// @Failure      401  {object}  common.APIResponse
// @Router       /admin/experience [post]
func (h *ResumeHandler) CreateExperience(c *gin.Context) {
	var req domain.CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	entry, err := h.service.CreateExperience(&req)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create experience entry", err)
		return
	}
	common.CreatedResponse(c, entry)
}

// UpdateExperience godoc
// @Summary      Update an experience entry
// @Tags         resume
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                             true  "Entry ID"
// @Param        request  body  domain.UpdateExperienceRequest  true  "Fields"
// @Success      200  {object}  common.APIResponse{data=domain.Experience}
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/experience/{id} [put]
func (h *ResumeHandler) UpdateExperience(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid entry ID", err)
		return
	}

	var req domain.UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	entry, err := h.service.UpdateExperience(id, &req)
	if err != nil {
		if errors.Is(err, common.ErrExperienceNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Experience entry not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update experience entry", err)
		return
	}
	common.SuccessResponse(c, entry, nil)
}

// DeleteExperience godoc
// @Summary      Delete an experience entry
// @Tags         resume
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Entry ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/experience/{id} [delete]
func (h *ResumeHandler) DeleteExperience(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid entry ID", err)
		return
	}

	if err := h.service.DeleteExperience(id); err != nil {
		if errors.Is(err, common.ErrExperienceNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Experience entry not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete experience entry", err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}

// ListEducation godoc
// @Summary      List education entries
// @Tags         resume
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]domain.Education}
// @Router       /education [get]
func (h *ResumeHandler) ListEducation(c *gin.Context) {
	entries, err := h.service.ListEducation()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load education", err)
		return
	}
	common.SuccessResponse(c, entries, nil)
}

// CreateEducation godoc
// @Summary      Create an education entry
// @Tags         resume
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.CreateEducationRequest  true  "Education"
// @Success      201  {object}  common.APIResponse{data=domain.Education}
// @Failure      401  {object}  common.APIResponse
// @Router       /admin/education [post]
func (h *ResumeHandler) CreateEducation(c *gin.Context) {
	var req domain.CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	entry, err := h.service.CreateEducation(&req)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create education entry", err)
		return
	}
	common.CreatedResponse(c, entry)
}

// UpdateEducation godoc
// @Summary      Update an education entry
// @Tags         resume
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                            true  "Entry ID"
// @Param        request  body  domain.UpdateEducationRequest  true  "Fields"
// @Success      200  {object}  common.APIResponse{data=domain.Education}
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/education/{id} [put]
func (h *ResumeHandler) UpdateEducation(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid entry ID", err)
		return
	}

	var req domain.UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	entry, err := h.service.UpdateEducation(id, &req)
	if err != nil {
		if errors.Is(err, common.ErrEducationNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Education entry not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update education entry", err)
		return
	}
	common.SuccessResponse(c, entry, nil)
}

// DeleteEducation godoc
// @Summary      Delete an education entry
// @Tags         resume
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Entry ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/education/{id} [delete]
func (h *ResumeHandler) DeleteEducation(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid entry ID", err)
		return
	}

	if err := h.service.DeleteEducation(id); err != nil {
		if errors.Is(err, common.ErrEducationNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Education entry not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete education entry", err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
