package domain

import "time"

// Tracking stream names
const (
	StreamVisitors = "visitors"
	StreamClicks   = "clicks"
)

// TrackingGeneration marks the soft-delete boundary of an event stream.
// Table: tracking_generations. A bulk delete advances Current; reads only
// see events stamped with the current generation, so deleted data can
// never be resurrected by a later append.
type TrackingGeneration struct {
	Stream    string    `gorm:"column:stream;primaryKey;size:32" json:"stream"`
	Current   int64     `gorm:"column:current;not null;default:0" json:"current"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for TrackingGeneration model
func (TrackingGeneration) TableName() string {
	return "tracking_generations"
}
