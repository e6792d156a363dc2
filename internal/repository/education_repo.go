package repository

import (
	"errors"

	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/domain"
	"gorm.io/gorm"
)

// EducationRepository defines data access for education entries
type EducationRepository interface {
	GetAll() ([]*domain.Education, error)
	FindByID(id uint) (*domain.Education, error)
	Create(entry *domain.Education) error
	Update(entry *domain.Education) error
	Delete(id uint) error
}

// educationRepository implements EducationRepository with GORM
type educationRepository struct {
	db *gorm.DB
}

// NewEducationRepository creates a new EducationRepository
func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &educationRepository{db: db}
}

// GetAll retrieves education entries, most recent first
func (r *educationRepository) GetAll() ([]*domain.Education, error) {
	var entries []*domain.Education

	err := r.db.
		Order("display_order ASC, start_date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// FindByID finds an education entry by ID
func (r *educationRepository) FindByID(id uint) (*domain.Education, error) {
	var entry domain.Education

	err := r.db.Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrEducationNotFound
		}
		return nil, err
	}

	return &entry, nil
}

// Create creates a new education entry
func (r *educationRepository) Create(entry *domain.Education) error {
	return r.db.Create(entry).Error
}

// Update updates an education entry
func (r *educationRepository) Update(entry *domain.Education) error {
	return r.db.Save(entry).Error
}

// Delete deletes an education entry by ID
func (r *educationRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Education{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrEducationNotFound
	}
	return nil
}
