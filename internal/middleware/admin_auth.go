package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/service"
)

// AdminAuth gates admin endpoints behind the configured credential.
// Accepts `Authorization: Bearer <token>` where token is either the
// static admin secret or a session JWT issued by the login endpoint.
func AdminAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.ErrorResponse(c, http.StatusUnauthorized, "Missing authorization header", nil)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format", nil)
			c.Abort()
			return
		}

		if !auth.VerifyAdmin(parts[1]) {
			common.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials", nil)
			c.Abort()
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}

// IsAdmin reports whether the request passed the admin gate
func IsAdmin(c *gin.Context) bool {
	v, exists := c.Get("isAdmin")
	if !exists {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}
