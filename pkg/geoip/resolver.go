package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Location is a best-effort geolocation result. Any subset of fields
// may be empty when lookups fail.
type Location struct {
	Country   string  `json:"country,omitempty"`
	Region    string  `json:"region,omitempty"`
	City      string  `json:"city,omitempty"`
	Timezone  string  `json:"timezone,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// Resolver resolves an IP address to a Location
type Resolver interface {
	Resolve(ctx context.Context, ip string) Location
}

// Config configures the HTTP resolver
type Config struct {
	// PrimaryURL is a keyless lookup endpoint (ip-api.com style: GET {url}/{ip}).
	PrimaryURL string
	// SecondaryURL is an optional keyed endpoint (ipgeolocation.io style).
	SecondaryURL string
	SecondaryKey string
	// FallbackIP replaces loopback/private addresses so local development
	// still exercises lookups.
	FallbackIP string
	Timeout    time.Duration
}

// HTTPResolver implements Resolver against two external lookup services
type HTTPResolver struct {
	cfg    Config
	client *http.Client
}

// NewHTTPResolver creates an HTTPResolver
func NewHTTPResolver(cfg Config) *HTTPResolver {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HTTPResolver{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// Resolve looks up an IP with primary-then-secondary fallback.
// It never fails: both providers down yields an empty Location.
func (r *HTTPResolver) Resolve(ctx context.Context, ip string) Location {
	ip = NormalizeIP(ip, r.cfg.FallbackIP)
	if ip == "" {
		return Location{}
	}

	if loc, ok := r.resolvePrimary(ctx, ip); ok {
		return loc
	}
	if loc, ok := r.resolveSecondary(ctx, ip); ok {
		return loc
	}
	return Location{}
}

// primaryResponse matches the ip-api.com JSON shape
type primaryResponse struct {
	Status     string  `json:"status"`
	Country    string  `json:"country"`
	RegionName string  `json:"regionName"`
	City       string  `json:"city"`
	Timezone   string  `json:"timezone"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

func (r *HTTPResolver) resolvePrimary(ctx context.Context, ip string) (Location, bool) {
	if r.cfg.PrimaryURL == "" {
		return Location{}, false
	}

	reqURL := fmt.Sprintf("%s/%s", strings.TrimRight(r.cfg.PrimaryURL, "/"), url.PathEscape(ip))
	var body primaryResponse
	if err := r.getJSON(ctx, reqURL, &body); err != nil {
		return Location{}, false
	}
	if body.Status != "success" {
		return Location{}, false
	}

	return Location{
		Country:   body.Country,
		Region:    body.RegionName,
		City:      body.City,
		Timezone:  body.Timezone,
		Latitude:  body.Lat,
		Longitude: body.Lon,
	}, true
}

// secondaryResponse matches the ipgeolocation.io JSON shape
type secondaryResponse struct {
	CountryName string `json:"country_name"`
	StateProv   string `json:"state_prov"`
	City        string `json:"city"`
	TimeZone    struct {
		Name string `json:"name"`
	} `json:"time_zone"`
	Latitude  json.Number `json:"latitude"`
	Longitude json.Number `json:"longitude"`
}

func (r *HTTPResolver) resolveSecondary(ctx context.Context, ip string) (Location, bool) {
	if r.cfg.SecondaryURL == "" {
		return Location{}, false
	}

	q := url.Values{}
	q.Set("ip", ip)
	if r.cfg.SecondaryKey != "" {
		q.Set("apiKey", r.cfg.SecondaryKey)
	}
	reqURL := r.cfg.SecondaryURL + "?" + q.Encode()

	var body secondaryResponse
	if err := r.getJSON(ctx, reqURL, &body); err != nil {
		return Location{}, false
	}
	if body.CountryName == "" {
		return Location{}, false
	}

	lat, _ := body.Latitude.Float64()
	lon, _ := body.Longitude.Float64()
	return Location{
		Country:   body.CountryName,
		Region:    body.StateProv,
		City:      body.City,
		Timezone:  body.TimeZone.Name,
		Latitude:  lat,
		Longitude: lon,
	}, true
}

func (r *HTTPResolver) getJSON(ctx context.Context, reqURL string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("lookup returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

// NormalizeIP takes the first address of a comma-separated proxy chain
// and substitutes fallback for loopback/private/unparseable addresses.
func NormalizeIP(raw, fallback string) string {
	ip := raw
	if idx := strings.Index(ip, ","); idx >= 0 {
		ip = ip[:idx]
	}
	ip = strings.TrimSpace(ip)

	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return fallback
	}
	return ip
}
