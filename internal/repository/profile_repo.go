package repository

import (
	"errors"

	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/domain"
	"gorm.io/gorm"
)

// ProfileRepository defines data access for the singleton profile
type ProfileRepository interface {
	Get() (*domain.Profile, error)
	Upsert(profile *domain.Profile) error
}

// profileRepository implements ProfileRepository with GORM
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Get retrieves the profile row
func (r *profileRepository) Get() (*domain.Profile, error) {
	var profile domain.Profile

	err := r.db.First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

// Upsert creates the profile row if missing, otherwise updates it
func (r *profileRepository) Upsert(profile *domain.Profile) error {
	var existing domain.Profile

	err := r.db.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}

	profile.ID = existing.ID
	return r.db.Save(profile).Error
}
