package service

import (
	"context"
	"fmt"
	"time"

	"github.com/portfolio/backend/internal/domain"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/pkg/cache"
	"github.com/portfolio/backend/pkg/logger"
)

// StatsPageSize is the fixed page size for raw-record pagination
const StatsPageSize = 10

// StatsService serves aggregated analytics to the admin dashboard
type StatsService interface {
	VisitorStats(ctx context.Context, filter domain.StatsFilter, page int, includeRecords bool) (*domain.VisitorStatsResponse, error)
	ClickStats(ctx context.Context, filter domain.StatsFilter, page int, includeRecords bool) (*domain.ClickStatsResponse, error)
	DeleteVisitors(ctx context.Context) error
	DeleteClicks(ctx context.Context) error
}

type statsService struct {
	repo  repository.TrackingRepository
	cache cache.Service
}

// NewStatsService creates a new StatsService. cache may be nil.
func NewStatsService(repo repository.TrackingRepository, cacheService cache.Service) StatsService {
	return &statsService{repo: repo, cache: cacheService}
}

// VisitorStats aggregates the filtered visitor set and optionally pages
// through the raw records
func (s *statsService) VisitorStats(ctx context.Context, filter domain.StatsFilter, page int, includeRecords bool) (*domain.VisitorStatsResponse, error) {
	var cacheKey string
	if s.cache != nil {
		key, err := s.cacheKey(domain.StreamVisitors, filter, page, includeRecords)
		if err != nil {
			return nil, err
		}
		cacheKey = key

		var cached domain.VisitorStatsResponse
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	events, err := s.repo.ListVisitorEvents(filter)
	if err != nil {
		return nil, err
	}

	resp := &domain.VisitorStatsResponse{
		TotalVisitors:     int64(len(events)),
		PageviewsByPage:   make(map[string]int),
		VisitorsByCountry: make(map[string]int),
		VisitorsByCity:    make(map[string]int),
		VisitorsByDate:    make(map[string]int),
	}

	for _, ev := range events {
		resp.PageviewsByPage[ev.Path]++
		resp.VisitorsByCountry[orUnknown(ev.Country)]++
		resp.VisitorsByCity[orUnknown(ev.City)]++
		resp.VisitorsByDate[utcDate(ev.CreatedAt)]++
	}

	page, totalPages := paginate(len(events), page)
	resp.CurrentPage = page
	resp.PageSize = StatsPageSize
	resp.TotalPages = totalPages
	resp.HasMore = page < totalPages

	if includeRecords {
		start := (page - 1) * StatsPageSize
		end := start + StatsPageSize
		if start > len(events) {
			start = len(events)
		}
		if end > len(events) {
			end = len(events)
		}
		records := make([]domain.VisitorEventResponse, 0, end-start)
		for _, ev := range events[start:end] {
			records = append(records, ev.ToResponse())
		}
		resp.Visitors = records
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, resp, cache.TTLStats); err != nil {
			logger.Warn("stats cache set failed: %v", err)
		}
	}
	return resp, nil
}

// ClickStats aggregates the filtered click set and optionally pages
// through the raw records
func (s *statsService) ClickStats(ctx context.Context, filter domain.StatsFilter, page int, includeRecords bool) (*domain.ClickStatsResponse, error) {
	var cacheKey string
	if s.cache != nil {
		key, err := s.cacheKey(domain.StreamClicks, filter, page, includeRecords)
		if err != nil {
			return nil, err
		}
		cacheKey = key

		var cached domain.ClickStatsResponse
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	events, err := s.repo.ListClickEvents(filter)
	if err != nil {
		return nil, err
	}

	resp := &domain.ClickStatsResponse{
		TotalClicks:     int64(len(events)),
		ClicksByPage:    make(map[string]int),
		ClicksByElement: make(map[string]int),
		ClicksByDate:    make(map[string]int),
	}

	for _, ev := range events {
		resp.ClicksByPage[ev.CurrentPath]++
		resp.ClicksByElement[elementKey(ev)]++
		resp.ClicksByDate[utcDate(ev.CreatedAt)]++
	}

	page, totalPages := paginate(len(events), page)
	resp.CurrentPage = page
	resp.PageSize = StatsPageSize
	resp.TotalPages = totalPages
	resp.HasMore = page < totalPages

	if includeRecords {
		start := (page - 1) * StatsPageSize
		end := start + StatsPageSize
		if start > len(events) {
			start = len(events)
		}
		if end > len(events) {
			end = len(events)
		}
		records := make([]domain.ClickEventResponse, 0, end-start)
		for _, ev := range events[start:end] {
			records = append(records, ev.ToResponse())
		}
		resp.Clicks = records
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, resp, cache.TTLStats); err != nil {
			logger.Warn("stats cache set failed: %v", err)
		}
	}
	return resp, nil
}

// DeleteVisitors clears the visitor stream. The advanced generation is
// part of every cache key, so cached pre-delete aggregates become
// unreachable immediately and expire via TTLStats.
func (s *statsService) DeleteVisitors(ctx context.Context) error {
	return s.repo.DeleteAllVisitorEvents()
}

// DeleteClicks clears the click stream
func (s *statsService) DeleteClicks(ctx context.Context) error {
	return s.repo.DeleteAllClickEvents()
}

// cacheKey scopes cached aggregates to the live stream generation
func (s *statsService) cacheKey(stream string, filter domain.StatsFilter, page int, includeRecords bool) (string, error) {
	gen, err := s.repo.CurrentGeneration(stream)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s:g%d:%d:%d:%d:%t",
		cache.PrefixStats, stream, gen, filter.Start.Unix(), filter.End.Unix(), page, includeRecords), nil
}

// paginate clamps the 1-indexed page and derives the page count
func paginate(total, page int) (int, int) {
	totalPages := (total + StatsPageSize - 1) / StatsPageSize
	if page < 1 {
		page = 1
	}
	return page, totalPages
}

// utcDate buckets an instant by UTC calendar date
func utcDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// orUnknown substitutes the Unknown bucket for missing geo data
func orUnknown(v string) string {
	if v == "" {
		return domain.UnknownBucket
	}
	return v
}

// elementKey labels a click target for aggregation
func elementKey(ev *domain.ClickEvent) string {
	if ev.ElementID != "" {
		return ev.ElementType + "#" + ev.ElementID
	}
	return ev.ElementType
}
