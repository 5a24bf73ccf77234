package config

import "testing"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/fintrack_test")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Port)
	}
	if cfg.AuthMode != "token" {
		t.Fatalf("auth mode = %q, want token", cfg.AuthMode)
	}
	if cfg.TokenTTL.Minutes() != 1440 {
		t.Fatalf("token ttl = %v, want 24h", cfg.TokenTTL)
	}
	if cfg.MailConfigured() {
		t.Fatal("mail should not be configured without SMTP settings")
	}
}

func TestLoadFailsFastOnMissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/fintrack_test")
	t.Setenv("JWT_SECRET_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing JWT_SECRET_KEY")
	}
}

func TestLoadRejectsBadAuthMode(t *testing.T) {
	setRequired(t)
	t.Setenv("AUTH_MODE", "basic")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown AUTH_MODE")
	}
}

func TestLoadParsesCORSOrigins(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ORIGINS", "https://aayush-oza.github.io, https://example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://aayush-oza.github.io" {
		t.Fatalf("origins = %v", cfg.CORSOrigins)
	}
}
