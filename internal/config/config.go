// Package config loads quizbox configuration from the environment,
// with an optional .env file for development setups.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process-wide configuration.
type Config struct {
	// AccountID is the signed-in account. Empty runs the tracker in
	// local-only mode.
	AccountID string

	// RemoteURL is the document store endpoint. Empty disables remote
	// sync entirely.
	RemoteURL string
	// RemoteToken is the bearer token for the document store.
	RemoteToken string

	// WriteInterval overrides the usage write throttle window.
	WriteInterval time.Duration
}

// Load reads configuration from .env (if present) and the environment.
// Missing values fall back to local-only defaults; Load never fails.
func Load() Config {
	// Absence of a .env file is the normal case.
	_ = godotenv.Load()

	cfg := Config{
		AccountID:   os.Getenv("QUIZBOX_ACCOUNT"),
		RemoteURL:   os.Getenv("QUIZBOX_REMOTE_URL"),
		RemoteToken: os.Getenv("QUIZBOX_REMOTE_TOKEN"),
	}
	if v := os.Getenv("QUIZBOX_WRITE_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.WriteInterval = time.Duration(ms) * time.Millisecond
		}
	}
	return cfg
}
