package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	t.Setenv("JWT_PRIVATE_KEY_PATH", "priv.pem")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "pub.pem")
	t.Setenv("JWT_ISSUER", "task-service")
}

func TestLoad_Success(t *testing.T) {
	setRequired(t)
	t.Setenv("ACCESS_TOKEN_TTL", "2m")
	t.Setenv("REFRESH_TOKEN_TTL", "3h")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("COOKIE_SAMESITE", "strict")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AccessTokenTTL != 2*time.Minute {
		t.Fatalf("AccessTokenTTL want 2m, got %v", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != 3*time.Hour {
		t.Fatalf("RefreshTokenTTL want 3h, got %v", cfg.RefreshTokenTTL)
	}
	if !cfg.CookieSecure || cfg.CookieSameSite != "strict" {
		t.Fatalf("cookie flags not applied: %+v", cfg)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AccessTokenTTL != 60*time.Minute {
		t.Fatalf("default AccessTokenTTL want 60m, got %v", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != 960*time.Hour {
		t.Fatalf("default RefreshTokenTTL want 960h, got %v", cfg.RefreshTokenTTL)
	}
	if cfg.CookiePath != "/" || cfg.CookieSameSite != "lax" {
		t.Fatalf("cookie defaults: %+v", cfg)
	}
	if cfg.AdminID != -1 {
		t.Fatalf("default AdminID want -1, got %d", cfg.AdminID)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "db")
	t.Setenv("JWT_PRIVATE_KEY_PATH", "a")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "b")
	// JWT_ISSUER намеренно не задан

	if _, err := Load(); err == nil {
		t.Fatal("expected error due to missing JWT_ISSUER, got nil")
	}
}

func TestLoad_BadSameSite(t *testing.T) {
	setRequired(t)
	t.Setenv("COOKIE_SAMESITE", "weird")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad samesite, got nil")
	}
}
