package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("QUIZBOX_ACCOUNT", "")
	t.Setenv("QUIZBOX_REMOTE_URL", "")
	t.Setenv("QUIZBOX_REMOTE_TOKEN", "")
	t.Setenv("QUIZBOX_WRITE_INTERVAL_MS", "")

	cfg := Load()
	assert.Empty(t, cfg.AccountID)
	assert.Empty(t, cfg.RemoteURL)
	assert.Zero(t, cfg.WriteInterval)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("QUIZBOX_ACCOUNT", "family-42")
	t.Setenv("QUIZBOX_REMOTE_URL", "https://sync.example.com")
	t.Setenv("QUIZBOX_REMOTE_TOKEN", "tok")
	t.Setenv("QUIZBOX_WRITE_INTERVAL_MS", "500")

	cfg := Load()
	assert.Equal(t, "family-42", cfg.AccountID)
	assert.Equal(t, "https://sync.example.com", cfg.RemoteURL)
	assert.Equal(t, "tok", cfg.RemoteToken)
	assert.Equal(t, 500*time.Millisecond, cfg.WriteInterval)
}

func TestLoadBadInterval(t *testing.T) {
	t.Setenv("QUIZBOX_WRITE_INTERVAL_MS", "not-a-number")
	cfg := Load()
	assert.Zero(t, cfg.WriteInterval)

	t.Setenv("QUIZBOX_WRITE_INTERVAL_MS", "-100")
	cfg = Load()
	assert.Zero(t, cfg.WriteInterval)
}
