package domain

import (
	"strings"
	"time"
)

// Project represents a portfolio project.
// Table: projects
type Project struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"column:title;size:255" json:"title"`
	Summary      string    `gorm:"column:summary;size:512" json:"summary"`
	Description  string    `gorm:"column:description;type:text" json:"description,omitempty"`
	ImageURL     string    `gorm:"column:image_url;size:512" json:"image_url,omitempty"`
	RepoURL      string    `gorm:"column:repo_url;size:512" json:"repo_url,omitempty"`
	LiveURL      string    `gorm:"column:live_url;size:512" json:"live_url,omitempty"`
	Tags         string    `gorm:"column:tags;size:512" json:"-"`
	Featured     bool      `gorm:"column:featured;index" json:"featured"`
	DisplayOrder int       `gorm:"column:display_order" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for Project model
func (Project) TableName() string {
	return "projects"
}

// ProjectResponse is the API response format for a project
type ProjectResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	RepoURL      string    `json:"repo_url,omitempty"`
	LiveURL      string    `json:"live_url,omitempty"`
	Tags         []string  `json:"tags"`
	Featured     bool      `json:"featured"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToResponse converts Project to ProjectResponse
func (p *Project) ToResponse() ProjectResponse {
	var tags []string
	if p.Tags != "" {
		tags = strings.Split(p.Tags, ",")
	}
	return ProjectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Summary:      p.Summary,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		RepoURL:      p.RepoURL,
		LiveURL:      p.LiveURL,
		Tags:         tags,
		Featured:     p.Featured,
		DisplayOrder: p.DisplayOrder,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// CreateProjectRequest is the request body for creating a project
type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required,max=255"`
	Summary      string   `json:"summary" binding:"max=512"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url" binding:"max=512"`
	RepoURL      string   `json:"repo_url" binding:"max=512"`
	LiveURL      string   `json:"live_url" binding:"max=512"`
	Tags         []string `json:"tags"`
	Featured     bool     `json:"featured"`
	DisplayOrder int      `json:"display_order"`
}

// UpdateProjectRequest is the request body for updating a project
type UpdateProjectRequest struct {
	Title        string   `json:"title" binding:"max=255"`
	Summary      string   `json:"summary" binding:"max=512"`
	Description  *string  `json:"description"`
	ImageURL     *string  `json:"image_url" binding:"omitempty,max=512"`
	RepoURL      *string  `json:"repo_url" binding:"omitempty,max=512"`
	LiveURL      *string  `json:"live_url" binding:"omitempty,max=512"`
	Tags         []string `json:"tags"`
	Featured     *bool    `json:"featured"`
	DisplayOrder *int     `json:"display_order"`
}

// JoinTags flattens a tag list into the stored comma-separated form
func JoinTags(tags []string) string {
	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			clean = append(clean, t)
		}
	}
	return strings.Join(clean, ",")
}
