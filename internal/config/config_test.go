package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9090"
redis:
  addr: "localhost:6379"
quiz:
  pity_bonus: 3
adventure:
  world_file: "castle.ini"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/mcp", cfg.Server.MCPPath)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Quiz.PityBonus)
	assert.Equal(t, 5, cfg.Quiz.MaxQuestions)
	assert.Equal(t, "castle.ini", cfg.Adventure.WorldFile)
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o600))

	t.Setenv("ARCADE_PORT", "7070")
	t.Setenv("ARCADE_POSTGRES_URL", "postgres://arcade@db/arcade")
	t.Setenv("ARCADE_QUIZ_SEED", "42")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "postgres://arcade@db/arcade", cfg.Postgres.URL)
	assert.Equal(t, int64(42), cfg.Quiz.Seed)
}

func TestLoadReportsBadInput(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("ARCADE_REDIS_DB", "not-a-number")
	_, err = Load("")
	assert.ErrorContains(t, err, "parse env")
}

func TestTTLDuration(t *testing.T) {
	assert.Equal(t, 2*time.Minute, TTLDuration("2m", time.Second))
	assert.Equal(t, time.Second, TTLDuration("", time.Second))
	assert.Equal(t, time.Second, TTLDuration("soon", time.Second))
}
