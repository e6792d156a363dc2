package domain

import (
	"time"
)

// Profile represents the site owner's profile (a single row).
// Table: profiles
type Profile struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FullName    string    `gorm:"column:full_name;size:255" json:"full_name"`
	Headline    string    `gorm:"column:headline;size:255" json:"headline"`
	Bio         string    `gorm:"column:bio;type:text" json:"bio"`
	AvatarURL   string    `gorm:"column:avatar_url;size:512" json:"avatar_url,omitempty"`
	Location    string    `gorm:"column:location;size:255" json:"location,omitempty"`
	Email       string    `gorm:"column:email;size:255" json:"email,omitempty"`
	GitHubURL   string    `gorm:"column:github_url;size:512" json:"github_url,omitempty"`
	LinkedInURL string    `gorm:"column:linkedin_url;size:512" json:"linkedin_url,omitempty"`
	ResumeURL   string    `gorm:"column:resume_url;size:512" json:"resume_url,omitempty"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for Profile model
func (Profile) TableName() string {
	return "profiles"
}

// UpdateProfileRequest is the request body for updating the profile
type UpdateProfileRequest struct {
	FullName    string `json:"full_name" binding:"required,max=255"`
	Headline    string `json:"headline" binding:"max=255"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url" binding:"max=512"`
	Location    string `json:"location" binding:"max=255"`
	Email       string `json:"email" binding:"omitempty,email"`
	GitHubURL   string `json:"github_url" binding:"max=512"`
	LinkedInURL string `json:"linkedin_url" binding:"max=512"`
	ResumeURL   string `json:"resume_url" binding:"max=512"`
}
