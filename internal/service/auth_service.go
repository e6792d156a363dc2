package service

import (
	"crypto/subtle"

	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/pkg/jwt"
)

// AuthService exchanges the static admin secret for a session token
type AuthService interface {
	// Login verifies the admin secret and issues a short-lived JWT.
	Login(token string) (string, error)
	// VerifyAdmin reports whether a bearer credential grants admin access.
	// Both the root secret and a valid session JWT are accepted.
	VerifyAdmin(token string) bool
}

type authService struct {
	adminToken string
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(adminToken string, jwtManager *jwt.Manager) AuthService {
	return &authService{adminToken: adminToken, jwtManager: jwtManager}
}

// Login verifies the admin secret in constant time and issues a session JWT
func (s *authService) Login(token string) (string, error) {
	if !s.secretMatches(token) {
		return "", common.ErrUnauthorized
	}
	return s.jwtManager.GenerateToken()
}

// VerifyAdmin accepts the root secret or a valid session JWT
func (s *authService) VerifyAdmin(token string) bool {
	if token == "" {
		return false
	}
	if s.secretMatches(token) {
		return true
	}
	_, err := s.jwtManager.VerifyToken(token)
	return err == nil
}

func (s *authService) secretMatches(token string) bool {
	if s.adminToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) == 1
}
