// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"gavel/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Backend.BaseURL = "http://127.0.0.1:5000"
	cfg.Session.Email = "tester@court.example"
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Cache.Enabled = true
	cfg.Cache.Dir = filepath.Join(base, "cache")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithBackendURL overrides the backend base URL on the test config.
func WithBackendURL(baseURL string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Backend.BaseURL = baseURL
	}
}

// WithSessionEmail overrides the session email on the test config.
func WithSessionEmail(email string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Session.Email = email
	}
}

// WithPageSize overrides the listing page size on the test config.
func WithPageSize(size int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.UI.PageSize = size
	}
}

// WithCacheDisabled turns the snapshot cache off on the test config.
func WithCacheDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Cache.Enabled = false
		cfg.Cache.Dir = ""
	}
}
