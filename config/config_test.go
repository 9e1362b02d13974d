package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "Haunted House", cfg.Window.Title)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, 50, cfg.Scene.GraveCount)
	assert.Zero(t, cfg.Scene.Seed)
	assert.Equal(t, "textures/door/color.jpg", cfg.Scene.DoorTexture)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "haunted.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
width = 800
vsync = false

[scene]
grave_count = 12
seed = 42

[log]
level = "debug"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.False(t, cfg.Window.VSync)
	assert.Equal(t, 12, cfg.Scene.GraveCount)
	assert.Equal(t, uint64(42), cfg.Scene.Seed)
	assert.Equal(t, "textures/door/color.jpg", cfg.Scene.DoorTexture)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	cfg := DefaultConfig()
	err := Decode([]byte("[scene]\nghosts = 3\n"), &cfg)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Height = 0
	cfg.Scene.GraveCount = -1
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window size")
	assert.Contains(t, err.Error(), "grave_count")
	assert.Contains(t, err.Error(), "log level")
}

func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--seed", "9", "--config", "x.toml"}))

	cfg := DefaultConfig()
	flags.Apply(fs, &cfg)

	assert.Equal(t, "x.toml", flags.ConfigPath)
	assert.Equal(t, uint64(9), cfg.Scene.Seed)
	assert.Equal(t, 50, cfg.Scene.GraveCount)
	assert.Equal(t, "info", cfg.Log.Level)
}
