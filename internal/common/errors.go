package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Content errors
	ErrProfileNotFound    = errors.New("profile not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrEducationNotFound  = errors.New("education not found")
	ErrMessageNotFound    = errors.New("message not found")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// Tracking errors
	ErrTrackingDisabled = errors.New("tracking disabled")
)
