package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/domain"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/pkg/geoip"
	"github.com/portfolio/backend/pkg/logger"
)

// maxElementTextLen caps stored element text
const maxElementTextLen = 100

// TrackingConfig tunes the tracking pipeline
type TrackingConfig struct {
	Enabled         bool
	VisitorWindow   int
	ClickWindow     int
	AdminPathPrefix string
}

// TrackingService defines the event capture pipeline
type TrackingService interface {
	RecordPageview(ctx context.Context, req *domain.PageviewRequest, clientIP, userAgent, referrer string) (*domain.TrackResponse, error)
	RecordClick(ctx context.Context, req *domain.ClickRequest, clientIP, userAgent string) (*domain.TrackResponse, error)
}

type trackingService struct {
	repo     repository.TrackingRepository
	resolver geoip.Resolver
	cfg      TrackingConfig
}

// NewTrackingService creates a new TrackingService
func NewTrackingService(repo repository.TrackingRepository, resolver geoip.Resolver, cfg TrackingConfig) TrackingService {
	if cfg.VisitorWindow <= 0 {
		cfg.VisitorWindow = 500
	}
	if cfg.ClickWindow <= 0 {
		cfg.ClickWindow = 1000
	}
	if cfg.AdminPathPrefix == "" {
		cfg.AdminPathPrefix = "/admin"
	}
	return &trackingService{repo: repo, resolver: resolver, cfg: cfg}
}

// RecordPageview enriches and stores a page view. Admin pages are never
// recorded; enrichment failure degrades to an event without geo fields.
func (s *trackingService) RecordPageview(ctx context.Context, req *domain.PageviewRequest, clientIP, userAgent, referrer string) (*domain.TrackResponse, error) {
	if !s.cfg.Enabled {
		return nil, common.ErrTrackingDisabled
	}
	if s.isAdminPath(req.Path) {
		// Skipped, not an error: the caller fires and forgets.
		return &domain.TrackResponse{Success: true}, nil
	}

	if req.Referrer == "" {
		req.Referrer = referrer
	}

	loc := s.resolve(ctx, clientIP)
	event := &domain.VisitorEvent{
		ID:        uuid.New().String(),
		Path:      req.Path,
		Referrer:  req.Referrer,
		IPAddress: firstForwardedIP(clientIP),
		UserAgent: userAgent,
		Country:   loc.Country,
		Region:    loc.Region,
		City:      loc.City,
		Timezone:  loc.Timezone,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateVisitorEvent(event, s.cfg.VisitorWindow); err != nil {
		return nil, err
	}
	return &domain.TrackResponse{Success: true, ID: event.ID}, nil
}

// RecordClick enriches and stores a click event
func (s *trackingService) RecordClick(ctx context.Context, req *domain.ClickRequest, clientIP, userAgent string) (*domain.TrackResponse, error) {
	if !s.cfg.Enabled {
		return nil, common.ErrTrackingDisabled
	}
	if s.isAdminPath(req.CurrentPath) {
		return &domain.TrackResponse{Success: true}, nil
	}

	// Truncate by runes so multibyte text is neither over-cut nor left
	// with a broken trailing sequence.
	text := strings.TrimSpace(req.ElementText)
	if runes := []rune(text); len(runes) > maxElementTextLen {
		text = string(runes[:maxElementTextLen])
	}

	loc := s.resolve(ctx, clientIP)
	event := &domain.ClickEvent{
		ID:          uuid.New().String(),
		ElementID:   req.ElementID,
		ElementType: req.ElementType,
		ElementText: text,
		ElementPath: req.ElementPath,
		CurrentPath: req.CurrentPath,
		X:           req.X,
		Y:           req.Y,
		IPAddress:   firstForwardedIP(clientIP),
		UserAgent:   userAgent,
		Country:     loc.Country,
		Region:      loc.Region,
		City:        loc.City,
		Timezone:    loc.Timezone,
		Latitude:    loc.Latitude,
		Longitude:   loc.Longitude,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateClickEvent(event, s.cfg.ClickWindow); err != nil {
		return nil, err
	}
	return &domain.TrackResponse{Success: true, ID: event.ID}, nil
}

// resolve is best-effort: a nil resolver or failed lookup yields an
// empty Location, never an error.
func (s *trackingService) resolve(ctx context.Context, clientIP string) geoip.Location {
	if s.resolver == nil {
		return geoip.Location{}
	}
	loc := s.resolver.Resolve(ctx, clientIP)
	if loc.Country == "" {
		logger.GetLogger().Debug().Str("ip", firstForwardedIP(clientIP)).Msg("geo lookup returned no data")
	}
	return loc
}

func (s *trackingService) isAdminPath(path string) bool {
	return strings.HasPrefix(path, s.cfg.AdminPathPrefix)
}

// firstForwardedIP keeps the first address of a proxy chain
func firstForwardedIP(raw string) string {
	if idx := strings.Index(raw, ","); idx >= 0 {
		raw = raw[:idx]
	}
	return strings.TrimSpace(raw)
}
