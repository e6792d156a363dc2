package repository

import (
	"time"

	"github.com/portfolio/backend/internal/domain"
	"gorm.io/gorm"
)

// TrackingRepository defines data access for the event streams.
// Each stream is a single authoritative append-only table; bulk deletion
// advances a generation marker instead of clearing rows, so reads after
// a delete are empty until new events arrive and old data never comes back.
type TrackingRepository interface {
	// Visitor stream
	CreateVisitorEvent(event *domain.VisitorEvent, window int) error
	ListVisitorEvents(filter domain.StatsFilter) ([]*domain.VisitorEvent, error)
	CountVisitorEvents(filter domain.StatsFilter) (int64, error)
	DeleteAllVisitorEvents() error

	// Click stream
	CreateClickEvent(event *domain.ClickEvent, window int) error
	ListClickEvents(filter domain.StatsFilter) ([]*domain.ClickEvent, error)
	CountClickEvents(filter domain.StatsFilter) (int64, error)
	DeleteAllClickEvents() error

	// CurrentGeneration returns the live generation for a stream
	CurrentGeneration(stream string) (int64, error)
}

// trackingRepository implements TrackingRepository with GORM
type trackingRepository struct {
	db *gorm.DB
}

// NewTrackingRepository creates a new TrackingRepository
func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

// CurrentGeneration returns the live generation for a stream,
// creating the marker row on first use.
func (r *trackingRepository) CurrentGeneration(stream string) (int64, error) {
	return currentGeneration(r.db, stream)
}

func currentGeneration(db *gorm.DB, stream string) (int64, error) {
	gen := domain.TrackingGeneration{Stream: stream}
	err := db.Where("stream = ?", stream).
		Attrs(domain.TrackingGeneration{Current: 0, UpdatedAt: time.Now().UTC()}).
		FirstOrCreate(&gen).Error
	if err != nil {
		return 0, err
	}
	return gen.Current, nil
}

// advanceGeneration bumps the stream generation and purges rows from
// older generations. Runs inside a transaction.
func advanceGeneration(db *gorm.DB, stream string, model interface{}) error {
	return db.Transaction(func(tx *gorm.DB) error {
		gen, err := currentGeneration(tx, stream)
		if err != nil {
			return err
		}
		err = tx.Model(&domain.TrackingGeneration{}).
			Where("stream = ?", stream).
			Updates(map[string]interface{}{
				"current":    gen + 1,
				"updated_at": time.Now().UTC(),
			}).Error
		if err != nil {
			return err
		}
		// Old-generation rows are already invisible; purge them eagerly.
		return tx.Where("generation <= ?", gen).Delete(model).Error
	})
}

// CreateVisitorEvent appends a page view and trims the stream to window
func (r *trackingRepository) CreateVisitorEvent(event *domain.VisitorEvent, window int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		gen, err := currentGeneration(tx, domain.StreamVisitors)
		if err != nil {
			return err
		}
		event.Generation = gen
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		return trimStream(tx, &domain.VisitorEvent{}, gen, window)
	})
}

// CreateClickEvent appends a click and trims the stream to window
func (r *trackingRepository) CreateClickEvent(event *domain.ClickEvent, window int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		gen, err := currentGeneration(tx, domain.StreamClicks)
		if err != nil {
			return err
		}
		event.Generation = gen
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		return trimStream(tx, &domain.ClickEvent{}, gen, window)
	})
}

// trimStream drops everything but the newest window rows of the live
// generation. Excess ids are resolved first so the delete stays portable
// across MySQL and the sqlite used in tests.
func trimStream(tx *gorm.DB, model interface{}, gen int64, window int) error {
	if window <= 0 {
		return nil
	}

	var count int64
	if err := tx.Model(model).Where("generation = ?", gen).Count(&count).Error; err != nil {
		return err
	}
	excess := int(count) - window
	if excess <= 0 {
		return nil
	}

	var ids []string
	err := tx.Model(model).
		Select("id").
		Where("generation = ?", gen).
		Order("created_at ASC").
		Order("id ASC").
		Limit(excess).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(model).Error
}

// ListVisitorEvents returns all live page views within the filter,
// newest first
func (r *trackingRepository) ListVisitorEvents(filter domain.StatsFilter) ([]*domain.VisitorEvent, error) {
	gen, err := currentGeneration(r.db, domain.StreamVisitors)
	if err != nil {
		return nil, err
	}

	var events []*domain.VisitorEvent
	err = applyFilter(r.db.Where("generation = ?", gen), filter).
		Order("created_at DESC").
		Order("id DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// CountVisitorEvents counts live page views within the filter
func (r *trackingRepository) CountVisitorEvents(filter domain.StatsFilter) (int64, error) {
	gen, err := currentGeneration(r.db, domain.StreamVisitors)
	if err != nil {
		return 0, err
	}

	var count int64
	err = applyFilter(r.db.Model(&domain.VisitorEvent{}).Where("generation = ?", gen), filter).
		Count(&count).Error
	return count, err
}

// DeleteAllVisitorEvents advances the visitor stream generation
func (r *trackingRepository) DeleteAllVisitorEvents() error {
	return advanceGeneration(r.db, domain.StreamVisitors, &domain.VisitorEvent{})
}

// ListClickEvents returns all live clicks within the filter, newest first
func (r *trackingRepository) ListClickEvents(filter domain.StatsFilter) ([]*domain.ClickEvent, error) {
	gen, err := currentGeneration(r.db, domain.StreamClicks)
	if err != nil {
		return nil, err
	}

	var events []*domain.ClickEvent
	err = applyFilter(r.db.Where("generation = ?", gen), filter).
		Order("created_at DESC").
		Order("id DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// CountClickEvents counts live clicks within the filter
func (r *trackingRepository) CountClickEvents(filter domain.StatsFilter) (int64, error) {
	gen, err := currentGeneration(r.db, domain.StreamClicks)
	if err != nil {
		return 0, err
	}

	var count int64
	err = applyFilter(r.db.Model(&domain.ClickEvent{}).Where("generation = ?", gen), filter).
		Count(&count).Error
	return count, err
}

// DeleteAllClickEvents advances the click stream generation
func (r *trackingRepository) DeleteAllClickEvents() error {
	return advanceGeneration(r.db, domain.StreamClicks, &domain.ClickEvent{})
}

// applyFilter adds inclusive created_at bounds
func applyFilter(q *gorm.DB, filter domain.StatsFilter) *gorm.DB {
	if !filter.Start.IsZero() {
		q = q.Where("created_at >= ?", filter.Start)
	}
	if !filter.End.IsZero() {
		q = q.Where("created_at <= ?", filter.End)
	}
	return q
}
