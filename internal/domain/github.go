package domain

import "time"

// ContributionDay is a single day of the contribution calendar.
// Level buckets the count into 0-4 for heatmap rendering.
type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// ContributionWeek is a Sunday-to-Saturday column of the calendar
type ContributionWeek struct {
	Days []ContributionDay `json:"days"`
}

// ContributionCalendar is the API response for the GitHub activity page.
// Fallback is true when the calendar was generated locally because the
// GitHub API was unavailable.
type ContributionCalendar struct {
	Username    string             `json:"username"`
	Total       int                `json:"total"`
	Weeks       []ContributionWeek `json:"weeks"`
	Fallback    bool               `json:"fallback"`
	GeneratedAt time.Time          `json:"generated_at"`
}
