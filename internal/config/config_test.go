package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tictac.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "X", cfg.Game.HumanMark)
	assert.True(t, cfg.Bot.Shuffle)
}

func TestLoadFullConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
game {
  human_mark = "O"
  log_level  = "debug"
  log_file   = "custom.log"
}

bot {
  think_ms = 100
  shuffle  = false
  seed     = 7
  parallel = true
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "O", cfg.Game.HumanMark)
	assert.Equal(t, "debug", cfg.Game.LogLevel)
	assert.Equal(t, "custom.log", cfg.Game.LogFile)
	assert.Equal(t, 100, cfg.Bot.ThinkMs)
	assert.False(t, cfg.Bot.Shuffle)
	assert.Equal(t, int64(7), cfg.Bot.Seed)
	assert.True(t, cfg.Bot.Parallel)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
bot {
  shuffle = false
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "X", cfg.Game.HumanMark)
	assert.Equal(t, Default().Bot.ThinkMs, cfg.Bot.ThinkMs)
	assert.False(t, cfg.Bot.Shuffle)
}

func TestLoadRejectsBadMark(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
game {
  human_mark = "Q"
}
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadSyntax(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `game {`)
	_, err := Load(path)
	assert.Error(t, err)
}
