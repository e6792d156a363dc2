package domain

import "time"

// Experience represents a work-experience entry.
// Table: experiences
type Experience struct {
	ID           uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Company      string     `gorm:"column:company;size:255" json:"company"`
	Role         string     `gorm:"column:role;size:255" json:"role"`
	Location     string     `gorm:"column:location;size:255" json:"location,omitempty"`
	StartDate    time.Time  `gorm:"column:start_date" json:"start_date"`
	EndDate      *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	Current      bool       `gorm:"column:current" json:"current"`
	Summary      string     `gorm:"column:summary;type:text" json:"summary,omitempty"`
	DisplayOrder int        `gorm:"column:display_order" json:"display_order"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for Experience model
func (Experience) TableName() string {
	return "experiences"
}

// CreateExperienceRequest is the request body for creating an experience entry
type CreateExperienceRequest struct {
	Company      string     `json:"company" binding:"required,max=255"`
	Role         string     `json:"role" binding:"required,max=255"`
	Location     string     `json:"location" binding:"max=255"`
	StartDate    time.Time  `json:"start_date" binding:"required"`
	EndDate      *time.Time `json:"end_date"`
	Current      bool       `json:"current"`
	Summary      string     `json:"summary"`
	DisplayOrder int        `json:"display_order"`
}

// UpdateExperienceRequest is the request body for updating an experience entry
type UpdateExperienceRequest struct {
	Company      string     `json:"company" binding:"max=255"`
	Role         string     `json:"role" binding:"max=255"`
	Location     *string    `json:"location" binding:"omitempty,max=255"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Current      *bool      `json:"current"`
	Summary      *string    `json:"summary"`
	DisplayOrder *int       `json:"display_order"`
}
