package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost:5432/gigflow")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Environment != "development" {
		t.Fatalf("environment = %q, want development default", cfg.Environment)
	}
	if cfg.HTTP.Port != 5000 {
		t.Fatalf("port = %d, want 5000 default", cfg.HTTP.Port)
	}
	if cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Fatalf("ttl = %s, want 168h default", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.CookieName != "token" {
		t.Fatalf("cookie name = %q, want token default", cfg.Auth.CookieName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost:5432/gigflow")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Environment != "production" || cfg.HTTP.Port != 8080 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Auth.TokenTTL != 30*time.Minute {
		t.Fatalf("ttl = %s, want 30m", cfg.Auth.TokenTTL)
	}
	if len(cfg.CORS.Origins) != 2 || cfg.CORS.Origins[1] != "https://b.example.com" {
		t.Fatalf("origins = %v", cfg.CORS.Origins)
	}
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost:5432/gigflow")
	t.Setenv("JWT_ACCESS_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("load succeeded without JWT_ACCESS_SECRET")
	}
}
