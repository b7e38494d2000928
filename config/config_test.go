package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/blog")

	_, err := Load()
	if !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("JWT_SECRET", "k")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	if !errors.Is(err, ErrMissingDatabaseURL) {
		t.Fatalf("expected ErrMissingDatabaseURL, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "k")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/blog")
	t.Setenv("JWT_TTL", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != "5000" {
		t.Fatalf("default port: got %q want %q", cfg.Port, "5000")
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Fatalf("default JWT TTL: got %v want %v", cfg.JWTTTL, 24*time.Hour)
	}
}

func TestLoad_ZeroTTLDisablesExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "k")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/blog")
	t.Setenv("JWT_TTL", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.JWTTTL != 0 {
		t.Fatalf("JWT_TTL=0s: got %v want 0", cfg.JWTTTL)
	}
}
