package repository

import (
	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/domain"
	"gorm.io/gorm"
)

// ContactRepository defines data access for contact messages
type ContactRepository interface {
	Create(message *domain.ContactMessage) error
	List(offset, limit int) ([]*domain.ContactMessage, error)
	Count() (int64, error)
	MarkRead(id uint) error
}

// contactRepository implements ContactRepository with GORM
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create stores a new contact message
func (r *contactRepository) Create(message *domain.ContactMessage) error {
	return r.db.Create(message).Error
}

// List retrieves contact messages, newest first
func (r *contactRepository) List(offset, limit int) ([]*domain.ContactMessage, error) {
	var messages []*domain.ContactMessage

	query := r.db.Order("created_at DESC")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// Count returns the total number of contact messages
func (r *contactRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.ContactMessage{}).Count(&count).Error
	return count, err
}

// MarkRead flags a message as read
func (r *contactRepository) MarkRead(id uint) error {
	result := r.db.Model(&domain.ContactMessage{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrMessageNotFound
	}
	return nil
}
