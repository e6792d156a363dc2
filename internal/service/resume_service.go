package service

import (
	"github.com/portfolio/backend/internal/domain"
	"github.com/portfolio/backend/internal/repository"
)

// ResumeService defines the business logic for experience and education
type ResumeService interface {
	ListExperience() ([]*domain.Experience, error)
	CreateExperience(req *domain.CreateExperienceRequest) (*domain.Experience, error)
	UpdateExperience(id uint, req *domain.UpdateExperienceRequest) (*domain.Experience, error)
	DeleteExperience(id uint) error

	ListEducation() ([]*domain.Education, error)
	CreateEducation(req *domain.CreateEducationRequest) (*domain.Education, error)
	UpdateEducation(id uint, req *domain.UpdateEducationRequest) (*domain.Education, error)
	DeleteEducation(id uint) error
}

type resumeService struct {
	experience repository.ExperienceRepository
	education  repository.EducationRepository
}

// NewResumeService creates a new ResumeService
func NewResumeService(experience repository.ExperienceRepository, education repository.EducationRepository) ResumeService {
	return &resumeService{experience: experience, education: education}
}

// ListExperience retrieves experience entries
func (s *resumeService) ListExperience() ([]*domain.Experience, error) {
	return s.experience.GetAll()
}

// CreateExperience creates an experience entry
func (s *resumeService) CreateExperience(req *domain.CreateExperienceRequest) (*domain.Experience, error) {
	entry := &domain.Experience{
		Company:      req.Company,
		Role:         req.Role,
		Location:     req.Location,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Current:      req.Current,
		Summary:      req.Summary,
		DisplayOrder: req.DisplayOrder,
	}
	if entry.Current {
		entry.EndDate = nil
	}

	if err := s.experience.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateExperience updates an experience entry
func (s *resumeService) UpdateExperience(id uint, req *domain.UpdateExperienceRequest) (*domain.Experience, error) {
	entry, err := s.experience.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Company != "" {
		entry.Company = req.Company
	}
	if req.Role != "" {
		entry.Role = req.Role
	}
	if req.Location != nil {
		entry.Location = *req.Location
	}
	if req.StartDate != nil {
		entry.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		entry.EndDate = req.EndDate
	}
	if req.Current != nil {
		entry.Current = *req.Current
		if entry.Current {
			entry.EndDate = nil
		}
	}
	if req.Summary != nil {
		entry.Summary = *req.Summary
	}
	if req.DisplayOrder != nil {
		entry.DisplayOrder = *req.DisplayOrder
	}

	if err := s.experience.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteExperience deletes an experience entry
func (s *resumeService) DeleteExperience(id uint) error {
	return s.experience.Delete(id)
}

// ListEducation retrieves education entries
func (s *resumeService) ListEducation() ([]*domain.Education, error) {
	return s.education.GetAll()
}

// CreateEducation creates an education entry
func (s *resumeService) CreateEducation(req *domain.CreateEducationRequest) (*domain.Education, error) {
	entry := &domain.Education{
		School:       req.School,
		Degree:       req.Degree,
		Field:        req.Field,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Summary:      req.Summary,
		DisplayOrder: req.DisplayOrder,
	}

	if err := s.education.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateEducation updates an education entry
func (s *resumeService) UpdateEducation(id uint, req *domain.UpdateEducationRequest) (*domain.Education, error) {
	entry, err := s.education.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.School != "" {
		entry.School = req.School
	}
	if req.Degree != "" {
		entry.Degree = req.Degree
	}
	if req.Field != nil {
		entry.Field = *req.Field
	}
	if req.StartDate != nil {
		entry.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		entry.EndDate = req.EndDate
	}
	if req.Summary != nil {
		entry.Summary = *req.Summary
	}
	if req.DisplayOrder != nil {
		entry.DisplayOrder = *req.DisplayOrder
	}

	if err := s.education.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteEducation deletes an education entry
func (s *resumeService) DeleteEducation(id uint) error {
	return s.education.Delete(id)
}
