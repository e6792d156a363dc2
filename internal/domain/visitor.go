package domain

import (
	"time"
)

// VisitorEvent represents a recorded page view.
// Table: visitor_events. Rows are immutable once created; bulk deletion
// advances the stream generation instead of touching rows in place.
type VisitorEvent struct {
	ID         string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Generation int64     `gorm:"column:generation;index" json:"-"`
	Path       string    `gorm:"column:path;size:512;index" json:"path"`
	Referrer   string    `gorm:"column:referrer;size:512" json:"referrer,omitempty"`
	IPAddress  string    `gorm:"column:ip_address;size:45" json:"ip_address,omitempty"`
	UserAgent  string    `gorm:"column:user_agent;size:512" json:"user_agent,omitempty"`
	Country    string    `gorm:"column:country;size:100" json:"country,omitempty"`
	Region     string    `gorm:"column:region;size:100" json:"region,omitempty"`
	City       string    `gorm:"column:city;size:100" json:"city,omitempty"`
	Timezone   string    `gorm:"column:timezone;size:64" json:"timezone,omitempty"`
	Latitude   float64   `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude  float64   `gorm:"column:longitude" json:"longitude,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;index" json:"created_at"`
}

// TableName specifies the table name for VisitorEvent model
func (VisitorEvent) TableName() string {
	return "visitor_events"
}

// VisitorEventResponse is the API response format for a visitor event
type VisitorEventResponse struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Referrer  string    `json:"referrer,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	Country   string    `json:"country,omitempty"`
	Region    string    `json:"region,omitempty"`
	City      string    `json:"city,omitempty"`
	Timezone  string    `json:"timezone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts VisitorEvent to VisitorEventResponse
func (v *VisitorEvent) ToResponse() VisitorEventResponse {
	return VisitorEventResponse{
		ID:        v.ID,
		Path:      v.Path,
		Referrer:  v.Referrer,
		UserAgent: v.UserAgent,
		Country:   v.Country,
		Region:    v.Region,
		City:      v.City,
		Timezone:  v.Timezone,
		CreatedAt: v.CreatedAt,
	}
}

// PageviewRequest is the request body for tracking a page view
type PageviewRequest struct {
	Path     string `json:"path" binding:"required,max=512"`
	Referrer string `json:"referrer" binding:"max=512"`
}

// TrackResponse is the response for tracking endpoints
type TrackResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
}

// DeleteResponse is the response for destructive tracking endpoints
type DeleteResponse struct {
	Success bool `json:"success"`
}
