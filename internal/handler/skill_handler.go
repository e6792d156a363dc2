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

// SkillHandler handles HTTP requests for skills
type SkillHandler struct {
	service service.SkillService
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(service service.SkillService) *SkillHandler {
	return &SkillHandler{service: service}
}

// ListSkills godoc
// @Summary      List skills grouped by category
// @Tags         skills
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]domain.SkillGroupResponse}
// @Router       /skills [get]
func (h *SkillHandler) ListSkills(c *gin.Context) {
	groups, err := h.service.ListSkillGroups()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load skills", err)
		return
	}

	common.SuccessResponse(c, groups, nil)
}

// CreateSkill godoc
// @Summary      Create a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.CreateSkillRequest  true  "Skill"
// @Success      201  {object}  common.APIResponse{data=domain.SkillResponse}
// @Failure      401  {object}  common.APIResponse
// @Router       /admin/skills [post]
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req domain.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	skill, err := h.service.CreateSkill(&req)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create skill", err)
		return
	}

	common.CreatedResponse(c, skill)
}

// UpdateSkill godoc
// @Summary      Update a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                        true  "Skill ID"
// @Param        request  body  domain.UpdateSkillRequest  true  "Skill fields"
// @Success      200  {object}  common.APIResponse{data=domain.SkillResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/skills/{id} [put]
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid skill ID", err)
		return
	}

	var req domain.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	skill, err := h.service.UpdateSkill(id, &req)
	if err != nil {
		if errors.Is(err, common.ErrSkillNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Skill not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update skill", err)
		return
	}

	common.SuccessResponse(c, skill, nil)
}

// DeleteSkill godoc
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Skill ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/skills/{id} [delete]
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid skill ID", err)
		return
	}

	if err := h.service.DeleteSkill(id); err != nil {
		if errors.Is(err, common.ErrSkillNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Skill not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete skill", err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
