package repository

import (
	"errors"

	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/domain"
	"gorm.io/gorm"
)

// SkillRepository defines data access for skills
type SkillRepository interface {
	GetAll() ([]*domain.Skill, error)
	FindByID(id uint) (*domain.Skill, error)
	Create(skill *domain.Skill) error
	Update(skill *domain.Skill) error
	Delete(id uint) error
}

// skillRepository implements SkillRepository with GORM
type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

// GetAll retrieves all skills ordered by category and display order
func (r *skillRepository) GetAll() ([]*domain.Skill, error) {
	var skills []*domain.Skill

	err := r.db.
		Order("category ASC, display_order ASC, name ASC").
		Find(&skills).Error
	if err != nil {
		return nil, err
	}

	return skills, nil
}

// FindByID finds a skill by ID
func (r *skillRepository) FindByID(id uint) (*domain.Skill, error) {
	var skill domain.Skill

	err := r.db.Where("id = ?", id).First(&skill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrSkillNotFound
		}
		return nil, err
	}

	return &skill, nil
}

// Create creates a new skill
func (r *skillRepository) Create(skill *domain.Skill) error {
	return r.db.Create(skill).Error
}

// Update updates a skill
func (r *skillRepository) Update(skill *domain.Skill) error {
	return r.db.Save(skill).Error
}

// Delete deletes a skill by ID
func (r *skillRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Skill{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrSkillNotFound
	}
	return nil
}
