package service

import (
	"time"

	"github.com/portfolio/backend/internal/domain"
	"github.com/portfolio/backend/internal/repository"
)

// ProfileService defines the business logic for the site profile
type ProfileService interface {
	GetProfile() (*domain.Profile, error)
	UpdateProfile(req *domain.UpdateProfileRequest) (*domain.Profile, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

// GetProfile retrieves the profile
func (s *profileService) GetProfile() (*domain.Profile, error) {
	return s.repo.Get()
}

// UpdateProfile replaces the profile contents
func (s *profileService) UpdateProfile(req *domain.UpdateProfileRequest) (*domain.Profile, error) {
	profile := &domain.Profile{
		FullName:    req.FullName,
		Headline:    req.Headline,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
		Location:    req.Location,
		Email:       req.Email,
		GitHubURL:   req.GitHubURL,
		LinkedInURL: req.LinkedInURL,
		ResumeURL:   req.ResumeURL,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Upsert(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
