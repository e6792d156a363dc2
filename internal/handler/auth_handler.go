package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/service"
)

// AuthHandler handles admin authentication
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// loginRequest is the admin login body
type loginRequest struct {
	Token string `json:"token" binding:"required"`
}

// loginResponse carries the issued session token
type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login godoc
// @Summary      Admin login
// @Description  Exchanges the admin secret for a short-lived session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      loginRequest  true  "Admin secret"
// @Success      200  {object}  loginResponse
// @Failure      401  {object}  common.APIResponse
// @Router       /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	token, err := h.service.Login(req.Token)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			common.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
