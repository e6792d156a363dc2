package service

import (
	"github.com/portfolio/backend/internal/domain"
	"github.com/portfolio/backend/internal/repository"
)

// ProjectService defines the business logic for projects
type ProjectService interface {
	ListProjects(featuredOnly bool) ([]domain.ProjectResponse, error)
	GetProject(id uint) (*domain.ProjectResponse, error)
	CreateProject(req *domain.CreateProjectRequest) (*domain.ProjectResponse, error)
	UpdateProject(id uint, req *domain.UpdateProjectRequest) (*domain.ProjectResponse, error)
	DeleteProject(id uint) error
}

type projectService struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

// ListProjects retrieves projects in display order
func (s *projectService) ListProjects(featuredOnly bool) ([]domain.ProjectResponse, error) {
	projects, err := s.repo.GetAll(featuredOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = project.ToResponse()
	}
	return responses, nil
}

// GetProject retrieves a project by ID
func (s *projectService) GetProject(id uint) (*domain.ProjectResponse, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	resp := project.ToResponse()
	return &resp, nil
}

// CreateProject creates a new project
func (s *projectService) CreateProject(req *domain.CreateProjectRequest) (*domain.ProjectResponse, error) {
	project := &domain.Project{
		Title:        req.Title,
		Summary:      req.Summary,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		RepoURL:      req.RepoURL,
		LiveURL:      req.LiveURL,
		Tags:         domain.JoinTags(req.Tags),
		Featured:     req.Featured,
		DisplayOrder: req.DisplayOrder,
	}

	if err := s.repo.Create(project); err != nil {
		return nil, err
	}

	resp := project.ToResponse()
	return &resp, nil
}

// UpdateProject updates a project; zero-value fields are left untouched
func (s *projectService) UpdateProject(id uint, req *domain.UpdateProjectRequest) (*domain.ProjectResponse, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		project.Title = req.Title
	}
	if req.Summary != "" {
		project.Summary = req.Summary
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ImageURL != nil {
		project.ImageURL = *req.ImageURL
	}
	if req.RepoURL != nil {
		project.RepoURL = *req.RepoURL
	}
	if req.LiveURL != nil {
		project.LiveURL = *req.LiveURL
	}
	if req.Tags != nil {
		project.Tags = domain.JoinTags(req.Tags)
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.DisplayOrder != nil {
		project.DisplayOrder = *req.DisplayOrder
	}

	if err := s.repo.Update(project); err != nil {
		return nil, err
	}

	resp := project.ToResponse()
	return &resp, nil
}

// DeleteProject deletes a project
func (s *projectService) DeleteProject(id uint) error {
	return s.repo.Delete(id)
}
