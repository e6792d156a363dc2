package domain

import "time"

// ContactMessage represents a submitted contact-form message.
// Table: contact_messages
type ContactMessage struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:255" json:"name"`
	Email     string    `gorm:"column:email;size:255" json:"email"`
	Subject   string    `gorm:"column:subject;size:255" json:"subject,omitempty"`
	Message   string    `gorm:"column:message;type:text" json:"message"`
	Read      bool      `gorm:"column:read;index" json:"read"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table name for ContactMessage model
func (ContactMessage) TableName() string {
	return "contact_messages"
}

// ContactRequest is the request body for the contact form
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Subject string `json:"subject" binding:"max=255"`
	Message string `json:"message" binding:"required,max=5000"`
}
