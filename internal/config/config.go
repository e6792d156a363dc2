package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so yaml values like "3s" or "15m" parse
type Duration time.Duration

// UnmarshalYAML parses a duration string
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std converts to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds all runtime configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Admin    AdminConfig    `yaml:"admin"`
	Tracking TrackingConfig `yaml:"tracking"`
	Geo      GeoConfig      `yaml:"geo"`
	GitHub   GitHubConfig   `yaml:"github"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port int    `yaml:"port"`
	Env  string `yaml:"env"`
}

// DatabaseConfig MySQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Params   string `yaml:"params"`
}

// DSN builds the MySQL DSN for GORM
func (d DatabaseConfig) DSN() string {
	params := d.Params
	if params == "" {
		params = "charset=utf8mb4&parseTime=True&loc=UTC"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", d.User, d.Password, d.Host, d.Port, d.Name, params)
}

// RedisConfig Redis connection settings
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// AdminConfig admin authentication settings
type AdminConfig struct {
	// Token is the static admin secret compared in constant time.
	Token string `yaml:"token"`
	// JWTSecret signs short-lived dashboard session tokens.
	JWTSecret string   `yaml:"jwt_secret"`
	JWTTTL    Duration `yaml:"jwt_ttl"`
}

// TrackingConfig visitor analytics settings
type TrackingConfig struct {
	Enabled bool `yaml:"enabled"`
	// VisitorWindow / ClickWindow cap stored events per stream (newest kept).
	VisitorWindow     int    `yaml:"visitor_window"`
	ClickWindow       int    `yaml:"click_window"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`
	AdminPathPrefix   string `yaml:"admin_path_prefix"`
}

// GeoConfig IP geolocation settings
type GeoConfig struct {
	PrimaryURL   string   `yaml:"primary_url"`
	SecondaryURL string   `yaml:"secondary_url"`
	SecondaryKey string   `yaml:"secondary_key"`
	FallbackIP   string   `yaml:"fallback_ip"`
	Timeout      Duration `yaml:"timeout"`
}

// GitHubConfig GitHub activity settings
type GitHubConfig struct {
	Username string   `yaml:"username"`
	Token    string   `yaml:"token"`
	CacheTTL Duration `yaml:"cache_ttl"`
}

// CORSConfig allowed origins for browser clients
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// Load reads a yaml config file and applies env-var overrides.
// Secrets always come from the environment when present.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if cfg.Admin.Token == "" {
		return nil, fmt.Errorf("admin token is not configured (set ADMIN_TOKEN)")
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080, Env: "local"},
		Database: DatabaseConfig{
			Host: "localhost",
			Port: 3306,
			User: "portfolio",
			Name: "portfolio",
		},
		Redis: RedisConfig{Host: "localhost", Port: 6379, PoolSize: 10},
		Admin: AdminConfig{JWTTTL: Duration(time.Hour)},
		Tracking: TrackingConfig{
			Enabled:           true,
			VisitorWindow:     500,
			ClickWindow:       1000,
			RequestsPerMinute: 120,
			AdminPathPrefix:   "/admin",
		},
		Geo: GeoConfig{
			PrimaryURL:   "http://ip-api.com/json",
			SecondaryURL: "https://api.ipgeolocation.io/ipgeo",
			FallbackIP:   "8.8.8.8",
			Timeout:      Duration(3 * time.Second),
		},
		GitHub: GitHubConfig{CacheTTL: Duration(15 * time.Minute)},
		CORS:   CORSConfig{AllowOrigins: []string{"http://localhost:3000"}},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = p
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("ADMIN_TOKEN"); v != "" {
		cfg.Admin.Token = v
	}
	if v := os.Getenv("ADMIN_JWT_SECRET"); v != "" {
		cfg.Admin.JWTSecret = v
	}
	if v := os.Getenv("TRACKING_ENABLED"); v != "" {
		cfg.Tracking.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("GEO_API_KEY"); v != "" {
		cfg.Geo.SecondaryKey = v
	}
	if v := os.Getenv("GITHUB_USERNAME"); v != "" {
		cfg.GitHub.Username = v
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.GitHub.Token = v
	}
	// Fall back to the admin token for JWT signing when unset.
	if cfg.Admin.JWTSecret == "" {
		cfg.Admin.JWTSecret = cfg.Admin.Token
	}
}
