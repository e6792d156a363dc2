package domain

import "time"

// Education represents an education entry.
// Table: educations
type Education struct {
	ID           uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	School       string     `gorm:"column:school;size:255" json:"school"`
	Degree       string     `gorm:"column:degree;size:255" json:"degree"`
	Field        string     `gorm:"column:field;size:255" json:"field,omitempty"`
	StartDate    time.Time  `gorm:"column:start_date" json:"start_date"`
	EndDate      *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	Summary      string     `gorm:"column:summary;type:text" json:"summary,omitempty"`
	DisplayOrder int        `gorm:"column:display_order" json:"display_order"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for Education model
func (Education) TableName() string {
	return "educations"
}

// CreateEducationRequest is the request body for creating an education entry
type CreateEducationRequest struct {
	School       string     `json:"school" binding:"required,max=255"`
	Degree       string     `json:"degree" binding:"required,max=255"`
	Field        string     `json:"field" binding:"max=255"`
	StartDate    time.Time  `json:"start_date" binding:"required"`
	EndDate      *time.Time `json:"end_date"`
	Summary      string     `json:"summary"`
	DisplayOrder int        `json:"display_order"`
}

// UpdateEducationRequest is the request body for updating an education entry
type UpdateEducationRequest struct {
	School       string     `json:"school" binding:"max=255"`
	Degree       string     `json:"degree" binding:"max=255"`
	Field        *string    `json:"field" binding:"omitempty,max=255"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Summary      *string    `json:"summary"`
	DisplayOrder *int       `json:"display_order"`
}
