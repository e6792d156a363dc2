package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/ginutil"
)

// GitHubHandler serves the GitHub activity page data
type GitHubHandler struct {
	service service.GitHubService
}

// NewGitHubHandler creates a new GitHubHandler
func NewGitHubHandler(service service.GitHubService) *GitHubHandler {
	return &GitHubHandler{service: service}
}

// GetContributions godoc
// @Summary      Contribution calendar
// @Description  Contribution calendar for the configured GitHub user; degrades to a locally generated calendar when GitHub is unreachable
// @Tags         github
// @Produce      json
// @Param        weeks  query  int  false  "Number of weeks (default 26, max 52)"
// @Success      200  {object}  common.APIResponse{data=domain.ContributionCalendar}
// @Router       /github/contributions [get]
func (h *GitHubHandler) GetContributions(c *gin.Context) {
	weeks := ginutil.QueryInt(c, "weeks", 0)

	calendar, err := h.service.Calendar(c.Request.Context(), weeks)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load contributions", err)
		return
	}

	common.SuccessResponse(c, calendar, nil)
}
