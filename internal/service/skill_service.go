package service

import (
	"github.com/portfolio/backend/internal/domain"
	"github.com/portfolio/backend/internal/repository"
)

// SkillService defines the business logic for skills
type SkillService interface {
	ListSkillGroups() ([]domain.SkillGroupResponse, error)
	CreateSkill(req *domain.CreateSkillRequest) (*domain.SkillResponse, error)
	UpdateSkill(id uint, req *domain.UpdateSkillRequest) (*domain.SkillResponse, error)
	DeleteSkill(id uint) error
}

type skillService struct {
	repo repository.SkillRepository
}

// NewSkillService creates a new SkillService
func NewSkillService(repo repository.SkillRepository) SkillService {
	return &skillService{repo: repo}
}

// ListSkillGroups retrieves skills grouped by category, preserving the
// repository's category ordering
func (s *skillService) ListSkillGroups() ([]domain.SkillGroupResponse, error) {
	skills, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	var groups []domain.SkillGroupResponse
	for _, skill := range skills {
		if len(groups) == 0 || groups[len(groups)-1].Category != skill.Category {
			groups = append(groups, domain.SkillGroupResponse{Category: skill.Category})
		}
		last := &groups[len(groups)-1]
		last.Skills = append(last.Skills, skill.ToResponse())
	}
	return groups, nil
}

// CreateSkill creates a new skill
func (s *skillService) CreateSkill(req *domain.CreateSkillRequest) (*domain.SkillResponse, error) {
	skill := &domain.Skill{
		Name:         req.Name,
		Category:     req.Category,
		Level:        req.Level,
		DisplayOrder: req.DisplayOrder,
	}

	if err := s.repo.Create(skill); err != nil {
		return nil, err
	}

	resp := skill.ToResponse()
	return &resp, nil
}

// UpdateSkill updates a skill
func (s *skillService) UpdateSkill(id uint, req *domain.UpdateSkillRequest) (*domain.SkillResponse, error) {
	skill, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		skill.Name = req.Name
	}
	if req.Category != "" {
		skill.Category = req.Category
	}
	if req.Level != nil {
		skill.Level = *req.Level
	}
	if req.DisplayOrder != nil {
		skill.DisplayOrder = *req.DisplayOrder
	}

	if err := s.repo.Update(skill); err != nil {
		return nil, err
	}

	resp := skill.ToResponse()
	return &resp, nil
}

// DeleteSkill deletes a skill
func (s *skillService) DeleteSkill(id uint) error {
	return s.repo.Delete(id)
}
