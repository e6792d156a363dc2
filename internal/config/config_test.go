package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  env: production
admin:
  token: root-secret
  jwt_ttl: 30m
geo:
  timeout: 5s
tracking:
  visitor_window: 200
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Admin.JWTTTL.Std() != 30*time.Minute {
		t.Errorf("expected jwt_ttl 30m, got %v", cfg.Admin.JWTTTL.Std())
	}
	if cfg.Geo.Timeout.Std() != 5*time.Second {
		t.Errorf("expected geo timeout 5s, got %v", cfg.Geo.Timeout.Std())
	}
	if cfg.Tracking.VisitorWindow != 200 {
		t.Errorf("expected visitor window 200, got %d", cfg.Tracking.VisitorWindow)
	}
	// Unset values keep defaults
	if cfg.Tracking.ClickWindow != 1000 {
		t.Errorf("expected default click window, got %d", cfg.Tracking.ClickWindow)
	}
	// JWT secret falls back to the admin token
	if cfg.Admin.JWTSecret != "root-secret" {
		t.Errorf("expected jwt secret fallback, got %q", cfg.Admin.JWTSecret)
	}
}

func TestLoad_MissingAdminToken(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: 8080\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error when admin token is unset")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, "admin:\n  token: from-file\n")

	t.Setenv("ADMIN_TOKEN", "from-env")
	t.Setenv("PORT", "7070")
	t.Setenv("TRACKING_ENABLED", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Admin.Token != "from-env" {
		t.Errorf("expected env override for admin token, got %q", cfg.Admin.Token)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("expected env override for port, got %d", cfg.Server.Port)
	}
	if cfg.Tracking.Enabled {
		t.Error("expected tracking disabled via env")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	path := writeConfigFile(t, "admin:\n  token: x\n  jwt_ttl: soon\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "env-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
	if cfg.GitHub.CacheTTL.Std() != 15*time.Minute {
		t.Errorf("expected default github cache ttl, got %v", cfg.GitHub.CacheTTL.Std())
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write(".env.local", "DOTENV_SAMPLE_KEY=from-local\n")
	write(".env", "DOTENV_SAMPLE_KEY=from-env\nDOTENV_SAMPLE_EXTRA=only-env\n")

	t.Setenv("DOTENV_SAMPLE_KEY", "")
	t.Setenv("DOTENV_SAMPLE_EXTRA", "")
	os.Unsetenv("DOTENV_SAMPLE_KEY")
	os.Unsetenv("DOTENV_SAMPLE_EXTRA")
	// t.Chdir requires Go 1.24; local toolchain is older, so do the same by hand.
	prevDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prevDir); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})

	applied := LoadDotEnv()
	if len(applied) != 2 || applied[0] != ".env.local" || applied[1] != ".env" {
		t.Fatalf("expected both env files applied in order, got %v", applied)
	}
	// .env.local wins for shared keys; .env still fills the rest.
	if got := os.Getenv("DOTENV_SAMPLE_KEY"); got != "from-local" {
		t.Errorf("expected .env.local precedence, got %q", got)
	}
	if got := os.Getenv("DOTENV_SAMPLE_EXTRA"); got != "only-env" {
		t.Errorf("expected .env value, got %q", got)
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 3306, User: "u", Password: "p", Name: "portfolio"}
	want := "u:p@tcp(db:3306)/portfolio?charset=utf8mb4&parseTime=True&loc=UTC"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
