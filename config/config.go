package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup. It is constructed
// once in main and passed down; nothing reads the environment after Load.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration

	// AuthMode selects how the owner identity reaches protected routes:
	// "token" (Authorization: Bearer) or "cookie" (session cookie).
	AuthMode string

	CORSOrigins []string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
}

// Load reads configuration from the environment (and a .env file when
// present) and validates the required fields.
func Load() (Config, error) {
	// A missing .env file is fine in production; env vars win either way.
	_ = godotenv.Load()

	cfg := Config{
		Port:        fallback(os.Getenv("SERVER_PORT"), "8080"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET_KEY")),
		AuthMode:    fallback(os.Getenv("AUTH_MODE"), "token"),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ORIGINS"), "*")),
		SMTPHost:    strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPUser:    strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPass:    os.Getenv("SMTP_PASS"),
	}

	if port := os.Getenv("SMTP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, errors.New("SMTP_PORT must be a number")
		}
		cfg.SMTPPort = p
	}

	minutes := fallback(os.Getenv("TOKEN_TTL_MINUTES"), "1440")
	ttl, err := strconv.Atoi(minutes)
	if err != nil || ttl <= 0 {
		return Config{}, errors.New("TOKEN_TTL_MINUTES must be a positive number")
	}
	cfg.TokenTTL = time.Duration(ttl) * time.Minute

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET_KEY is required")
	}
	if cfg.AuthMode != "token" && cfg.AuthMode != "cookie" {
		return Config{}, errors.New("AUTH_MODE must be token or cookie")
	}

	return cfg, nil
}

// MailConfigured reports whether the reset-mail sender can be used.
func (c Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort != 0
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
