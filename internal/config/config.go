// Package config reads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the portfolio service reads from its environment.
type Config struct {
	Port              string
	CatalogSource     string
	PreviewDir        string
	PreviewPages      int
	SessionTTL        time.Duration
	ContactURL        string
	AdminEmail        string
	AdminDashboardURL string
	Environment       string
	LogLevel          string
	AuditDBPath       string
	RedisAddr         string
	RedisPassword     string
	MinioEndpoint     string
	MinioAccessKey    string
	MinioSecretKey    string
	MinioBucket       string
	MinioUseSSL       bool
	RequestRateLimit  float64
}

// Load reads the configuration, applying defaults for anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getenv("PORT", "8888"),
		CatalogSource:     getenv("CATALOG_SOURCE", "data/publications.json"),
		PreviewDir:        getenv("PREVIEW_DIR", "docs/previews"),
		ContactURL:        getenv("CONTACT_URL", "/contact.html"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminDashboardURL: os.Getenv("ADMIN_DASHBOARD_URL"),
		Environment:       strings.ToLower(getenv("APP_ENV", "production")),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		AuditDBPath:       os.Getenv("AUDIT_DB_PATH"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		MinioEndpoint:     os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey:    os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:    os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:       getenv("MINIO_BUCKET", "previews"),
		MinioUseSSL:       getenv("MINIO_USE_SSL", "false") == "true",
	}

	pages, err := strconv.Atoi(getenv("PREVIEW_PAGES", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid PREVIEW_PAGES: %w", err)
	}
	if pages < 1 {
		return nil, fmt.Errorf("PREVIEW_PAGES must be at least 1, got %d", pages)
	}
	cfg.PreviewPages = pages

	ttl, err := time.ParseDuration(getenv("SESSION_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	limit, err := strconv.ParseFloat(getenv("REQUEST_RATE_LIMIT", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_RATE_LIMIT: %w", err)
	}
	if limit < 0 {
		return nil, fmt.Errorf("REQUEST_RATE_LIMIT must not be negative, got %v", limit)
	}
	cfg.RequestRateLimit = limit

	return cfg, nil
}

// IsDevelopment reports whether internal error detail may be returned to clients.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
