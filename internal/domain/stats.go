package domain

import "time"

// UnknownBucket is the aggregation bucket for events without geo data
const UnknownBucket = "Unknown"

// StatsFilter bounds a stats query. Zero times mean unbounded.
// Bounds are inclusive UTC day boundaries.
type StatsFilter struct {
	Start time.Time
	End   time.Time
}

// VisitorStatsResponse is the admin dashboard payload for page views
type VisitorStatsResponse struct {
	TotalVisitors     int64          `json:"totalVisitors"`
	PageviewsByPage   map[string]int `json:"pageviewsByPage"`
	VisitorsByCountry map[string]int `json:"visitorsByCountry"`
	VisitorsByCity    map[string]int `json:"visitorsByCity"`
	VisitorsByDate    map[string]int `json:"visitorsByDate"`

	// Raw records, included only when requested
	Visitors []VisitorEventResponse `json:"visitors,omitempty"`

	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	HasMore     bool `json:"hasMore"`
}

// ClickStatsResponse is the admin dashboard payload for clicks
type ClickStatsResponse struct {
	TotalClicks     int64          `json:"totalClicks"`
	ClicksByPage    map[string]int `json:"clicksByPage"`
	ClicksByElement map[string]int `json:"clicksByElement"`
	ClicksByDate    map[string]int `json:"clicksByDate"`

	Clicks []ClickEventResponse `json:"clicks,omitempty"`

	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	HasMore     bool `json:"hasMore"`
}
