package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
[world]
name = "arena"
tick_rate = "20ms"
max_ticks = 500

[scripting]
enabled = false

[logging]
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "arena", cfg.World.Name)
	assert.Equal(t, 20*time.Millisecond, cfg.World.TickRate)
	assert.Equal(t, uint64(500), cfg.World.MaxTicks)
	assert.False(t, cfg.Scripting.Enabled)
	assert.Equal(t, "json", cfg.Logging.Format)

	// untouched keys keep their defaults
	assert.Equal(t, "scripts", cfg.Scripting.Dir)
	assert.Equal(t, "data/scene.yaml", cfg.Scene.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 20, cfg.World.RegenEvery)
}

func TestLoad_EmptyFileIsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "syntax", body: "[world\nname = 1"},
		{name: "wrong type", body: "[world]\nmax_ticks = \"many\""},
		{name: "zero tick rate", body: "[world]\ntick_rate = \"0s\""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
