package repository

import (
	"errors"

	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/domain"
	"gorm.io/gorm"
)

// ProjectRepository defines data access for projects
type ProjectRepository interface {
	GetAll(featuredOnly bool) ([]*domain.Project, error)
	FindByID(id uint) (*domain.Project, error)
	Create(project *domain.Project) error
	Update(project *domain.Project) error
	Delete(id uint) error
}

// projectRepository implements ProjectRepository with GORM
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// GetAll retrieves projects in display order
func (r *projectRepository) GetAll(featuredOnly bool) ([]*domain.Project, error) {
	var projects []*domain.Project

	query := r.db.Order("display_order ASC, created_at DESC")
	if featuredOnly {
		query = query.Where("featured = ?", true)
	}

	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID finds a project by ID
func (r *projectRepository) FindByID(id uint) (*domain.Project, error) {
	var project domain.Project

	err := r.db.Where("id = ?", id).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrProjectNotFound
		}
		return nil, err
	}

	return &project, nil
}

// Create creates a new project
func (r *projectRepository) Create(project *domain.Project) error {
	return r.db.Create(project).Error
}

// Update updates a project
func (r *projectRepository) Update(project *domain.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project by ID
func (r *projectRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrProjectNotFound
	}
	return nil
}
