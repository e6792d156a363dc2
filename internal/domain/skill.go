package domain

import "time"

// Skill represents a skill entry shown on the about page.
// Table: skills
type Skill struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name;size:100" json:"name"`
	Category     string    `gorm:"column:category;size:100;index" json:"category"`
	Level        int       `gorm:"column:level" json:"level"`
	DisplayOrder int       `gorm:"column:display_order" json:"display_order"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for Skill model
func (Skill) TableName() string {
	return "skills"
}

// SkillResponse is the API response format for a skill
type SkillResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Level        int    `json:"level"`
	DisplayOrder int    `json:"display_order"`
}

// ToResponse converts Skill to SkillResponse
func (s *Skill) ToResponse() SkillResponse {
	return SkillResponse{
		ID:           s.ID,
		Name:         s.Name,
		Category:     s.Category,
		Level:        s.Level,
		DisplayOrder: s.DisplayOrder,
	}
}

// SkillGroupResponse groups skills by category for display
type SkillGroupResponse struct {
	Category string          `json:"category"`
	Skills   []SkillResponse `json:"skills"`
}

// CreateSkillRequest is the request body for creating a skill
type CreateSkillRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Category     string `json:"category" binding:"required,max=100"`
	Level        int    `json:"level" binding:"min=0,max=100"`
	DisplayOrder int    `json:"display_order"`
}

// UpdateSkillRequest is the request body for updating a skill
type UpdateSkillRequest struct {
	Name         string `json:"name" binding:"max=100"`
	Category     string `json:"category" binding:"max=100"`
	Level        *int   `json:"level" binding:"omitempty,min=0,max=100"`
	DisplayOrder *int   `json:"display_order"`
}
