package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	cfg := Load()

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.ListenAddr)
	assert.NotEmpty(t, cfg.VisionBackend)
	assert.Equal(t, 10, cfg.SeedCount)
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("FOODRESCUE_DB", "/custom/foodrescue.db")
	t.Setenv("VISION_BACKEND", "claude")
	t.Setenv("CLAUDE_API_KEY", "sk-test123")
	t.Setenv("SEED_COUNT", "25")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "/custom/foodrescue.db", cfg.DBPath)
	assert.Equal(t, "claude", cfg.VisionBackend)
	assert.Equal(t, "sk-test123", cfg.ClaudeAPIKey)
	assert.Equal(t, 25, cfg.SeedCount)
}

func TestLoadDBPathHasNoDefault(t *testing.T) {
	t.Setenv("FOODRESCUE_DB", "")

	cfg := Load()

	assert.Empty(t, cfg.DBPath)
}

func TestLoadBadSeedCountFallsBack(t *testing.T) {
	t.Setenv("SEED_COUNT", "not-a-number")

	cfg := Load()

	assert.Equal(t, 10, cfg.SeedCount)
}
