package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/portfolio/backend/internal/domain"
	"github.com/portfolio/backend/pkg/cache"
	"github.com/portfolio/backend/pkg/logger"
)

// Calendar size bounds (weeks shown on the activity page)
const (
	defaultCalendarWeeks = 26
	maxCalendarWeeks     = 52
)

// ContributionFetcher fetches daily contribution counts keyed by UTC
// date. pkg/github.Client satisfies this.
type ContributionFetcher interface {
	FetchContributions(ctx context.Context, login string, from, to time.Time) (map[string]int, error)
}

// GitHubService serves the contribution calendar for the activity page
type GitHubService interface {
	Calendar(ctx context.Context, weeks int) (*domain.ContributionCalendar, error)
}

type githubService struct {
	fetcher  ContributionFetcher
	cache    cache.Service
	username string
	cacheTTL time.Duration
}

// NewGitHubService creates a new GitHubService. cache may be nil.
func NewGitHubService(fetcher ContributionFetcher, cacheService cache.Service, username string, cacheTTL time.Duration) GitHubService {
	if cacheTTL <= 0 {
		cacheTTL = cache.TTLGitHub
	}
	return &githubService{
		fetcher:  fetcher,
		cache:    cacheService,
		username: username,
		cacheTTL: cacheTTL,
	}
}

// Calendar returns the contribution calendar for the configured user.
// When the GitHub API is unreachable it degrades to a deterministic
// locally generated calendar marked fallback.
func (s *githubService) Calendar(ctx context.Context, weeks int) (*domain.ContributionCalendar, error) {
	if weeks <= 0 {
		weeks = defaultCalendarWeeks
	}
	if weeks > maxCalendarWeeks {
		weeks = maxCalendarWeeks
	}

	cacheKey := fmt.Sprintf("%s%s:%d", cache.PrefixGitHub, s.username, weeks)
	if s.cache != nil {
		var cached domain.ContributionCalendar
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	from, to := calendarRange(weeks, time.Now().UTC())

	counts := map[string]int{}
	fallback := false
	if s.fetcher != nil && s.username != "" {
		fetched, err := s.fetcher.FetchContributions(ctx, s.username, from, to)
		if err != nil {
			logger.Warn("github contributions fetch failed: %v", err)
			fallback = true
		} else {
			counts = fetched
		}
	} else {
		fallback = true
	}

	calendar := buildCalendar(s.username, from, to, counts, fallback)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, calendar, s.cacheTTL); err != nil {
			logger.Warn("github cache set failed: %v", err)
		}
	}
	return calendar, nil
}

// calendarRange returns the Sunday-aligned [from, to] day range covering
// the requested number of weeks, ending today
func calendarRange(weeks int, now time.Time) (time.Time, time.Time) {
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	firstOfLastWeek := to.AddDate(0, 0, -int(to.Weekday()))
	from := firstOfLastWeek.AddDate(0, 0, -7*(weeks-1))
	return from, to
}

// buildCalendar assembles week columns from daily counts, generating
// deterministic placeholder counts for fallback mode
func buildCalendar(username string, from, to time.Time, counts map[string]int, fallback bool) *domain.ContributionCalendar {
	calendar := &domain.ContributionCalendar{
		Username:    username,
		Fallback:    fallback,
		GeneratedAt: time.Now().UTC(),
	}

	var week domain.ContributionWeek
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")

		count := counts[date]
		if fallback {
			count = fallbackCount(username, date)
		}

		calendar.Total += count
		week.Days = append(week.Days, domain.ContributionDay{
			Date:  date,
			Count: count,
			Level: contributionLevel(count),
		})

		if day.Weekday() == time.Saturday {
			calendar.Weeks = append(calendar.Weeks, week)
			week = domain.ContributionWeek{}
		}
	}
	if len(week.Days) > 0 {
		calendar.Weeks = append(calendar.Weeks, week)
	}
	return calendar
}

// fallbackCount derives a stable pseudo-random count for (user, day).
// Hash-based so repeated renders agree without storing anything.
func fallbackCount(username, date string) int {
	h := fnv.New64a()
	h.Write([]byte(username))
	h.Write([]byte(date))
	v := h.Sum64()

	// Roughly a third of days stay empty, the rest spread over 1-12.
	if v%3 == 0 {
		return 0
	}
	return int(v%12) + 1
}

// contributionLevel buckets a count into heatmap levels 0-4
func contributionLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 2:
		return 1
	case count <= 5:
		return 2
	case count <= 9:
		return 3
	default:
		return 4
	}
}
