package migration

import (
	"github.com/portfolio/backend/internal/domain"
	"gorm.io/gorm"
)

// Run applies schema migrations for all models
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Profile{},
		&domain.Project{},
		&domain.Skill{},
		&domain.Experience{},
		&domain.Education{},
		&domain.ContactMessage{},
		&domain.VisitorEvent{},
		&domain.ClickEvent{},
		&domain.TrackingGeneration{},
	)
}
