package domain

import (
	"time"
)

// ClickEvent represents a recorded DOM click.
// Table: click_events. Independent stream from visitor_events; no foreign
// keys link the two.
type ClickEvent struct {
	ID          string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Generation  int64     `gorm:"column:generation;index" json:"-"`
	ElementID   string    `gorm:"column:element_id;size:255" json:"element_id,omitempty"`
	ElementType string    `gorm:"column:element_type;size:64" json:"element_type"`
	ElementText string    `gorm:"column:element_text;size:100" json:"element_text,omitempty"`
	ElementPath string    `gorm:"column:element_path;size:512" json:"element_path,omitempty"`
	CurrentPath string    `gorm:"column:current_path;size:512;index" json:"current_path"`
	X           int       `gorm:"column:x" json:"x"`
	Y           int       `gorm:"column:y" json:"y"`
	IPAddress   string    `gorm:"column:ip_address;size:45" json:"ip_address,omitempty"`
	UserAgent   string    `gorm:"column:user_agent;size:512" json:"user_agent,omitempty"`
	Country     string    `gorm:"column:country;size:100" json:"country,omitempty"`
	Region      string    `gorm:"column:region;size:100" json:"region,omitempty"`
	City        string    `gorm:"column:city;size:100" json:"city,omitempty"`
	Timezone    string    `gorm:"column:timezone;size:64" json:"timezone,omitempty"`
	Latitude    float64   `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude   float64   `gorm:"column:longitude" json:"longitude,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;index" json:"created_at"`
}

// TableName specifies the table name for ClickEvent model
func (ClickEvent) TableName() string {
	return "click_events"
}

// ClickEventResponse is the API response format for a click event
type ClickEventResponse struct {
	ID          string    `json:"id"`
	ElementID   string    `json:"element_id,omitempty"`
	ElementType string    `json:"element_type"`
	ElementText string    `json:"element_text,omitempty"`
	ElementPath string    `json:"element_path,omitempty"`
	CurrentPath string    `json:"current_path"`
	X           int       `json:"x"`
	Y           int       `json:"y"`
	Country     string    `json:"country,omitempty"`
	City        string    `json:"city,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToResponse converts ClickEvent to ClickEventResponse
func (e *ClickEvent) ToResponse() ClickEventResponse {
	return ClickEventResponse{
		ID:          e.ID,
		ElementID:   e.ElementID,
		ElementType: e.ElementType,
		ElementText: e.ElementText,
		ElementPath: e.ElementPath,
		CurrentPath: e.CurrentPath,
		X:           e.X,
		Y:           e.Y,
		Country:     e.Country,
		City:        e.City,
		CreatedAt:   e.CreatedAt,
	}
}

// ClickRequest is the request body for tracking a click.
// ElementPath is the client-built ancestor chain (up to 5 levels) and is
// stored opaquely.
type ClickRequest struct {
	ElementID   string `json:"elementId" binding:"max=255"`
	ElementType string `json:"elementType" binding:"required,max=64"`
	ElementText string `json:"elementText"`
	ElementPath string `json:"elementPath" binding:"max=512"`
	CurrentPath string `json:"currentPath" binding:"required,max=512"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
}
