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

// ProjectHandler handles HTTP requests for projects
type ProjectHandler struct {
	service service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(service service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// ListProjects godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        featured  query  bool  false  "Featured projects only"
// @Success      200  {object}  common.APIResponse{data=[]domain.ProjectResponse}
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	featuredOnly := ginutil.QueryBool(c, "featured")

	projects, err := h.service.ListProjects(featuredOnly)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load projects", err)
		return
	}

	common.SuccessResponse(c, projects, nil)
}

// GetProject godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id  path  int  true  "Project ID"
// @Success      200  {object}  common.APIResponse{data=domain.ProjectResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID", err)
		return
	}

	project, err := h.service.GetProject(id)
	if err != nil {
		if errors.Is(err, common.ErrProjectNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Project not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load project", err)
		return
	}

	common.SuccessResponse(c, project, nil)
}

// CreateProject godoc
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.CreateProjectRequest  true  "Project"
// @Success      201  {object}  common.APIResponse{data=domain.ProjectResponse}
// @Failure      401  {object}  common.APIResponse
// @Router       /admin/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req domain.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	project, err := h.service.CreateProject(&req)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create project", err)
		return
	}

	common.CreatedResponse(c, project)
}

// UpdateProject godoc
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                          true  "Project ID"
// @Param        request  body  domain.UpdateProjectRequest  true  "Project fields"
// @Success      200  {object}  common.APIResponse{data=domain.ProjectResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID", err)
		return
	}

	var req domain.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	project, err := h.service.UpdateProject(id, &req)
	if err != nil {
		if errors.Is(err, common.ErrProjectNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Project not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update project", err)
		return
	}

	common.SuccessResponse(c, project, nil)
}

// DeleteProject godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Project ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID", err)
		return
	}

	if err := h.service.DeleteProject(id); err != nil {
		if errors.Is(err, common.ErrProjectNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Project not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete project", err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
