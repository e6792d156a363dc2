package repository

import (
	"errors"

	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/domain"
	"gorm.io/gorm"
)

// ExperienceRepository defines data access for experience entries
type ExperienceRepository interface {
	GetAll() ([]*domain.Experience, error)
	FindByID(id uint) (*domain.Experience, error)
	Create(entry *domain.Experience) error
	Update(entry *domain.Experience) error
	Delete(id uint) error
}

// experienceRepository implements ExperienceRepository with GORM
type experienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository creates a new ExperienceRepository
func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

// GetAll retrieves experience entries, most recent first
func (r *experienceRepository) GetAll() ([]*domain.Experience, error) {
	var entries []*domain.Experience

	err := r.db.
		Order("display_order ASC, start_date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// FindByID finds an experience entry by ID
func (r *experienceRepository) FindByID(id uint) (*domain.Experience, error) {
	var entry domain.Experience

	err := r.db.Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrExperienceNotFound
		}
		return nil, err
	}

	return &entry, nil
}

// Create creates a new experience entry
func (r *experienceRepository) Create(entry *domain.Experience) error {
	return r.db.Create(entry).Error
}

// Update updates an experience entry
func (r *experienceRepository) Update(entry *domain.Experience) error {
	return r.db.Save(entry).Error
}

// Delete deletes an experience entry by ID
func (r *experienceRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Experience{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrExperienceNotFound
	}
	return nil
}
