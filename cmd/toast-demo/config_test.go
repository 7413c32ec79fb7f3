package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	toast "github.com/Ultrajackstr/tea-toast"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2, cfg.Anchor.X)
	assert.Equal(t, 1, cfg.Anchor.Y)
	assert.Equal(t, "top-down", cfg.Direction)
	assert.False(t, cfg.AlignToEnd)
	assert.Equal(t, "5s", cfg.Duration)
	assert.Equal(t, 1, cfg.ProgressBar.Width)

	dir, err := cfg.ParseDirection()
	require.NoError(t, err)
	assert.Equal(t, toast.TopDown, dir)

	d, err := cfg.ParseDuration()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, d)
}

func TestLoadConfigOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configContent := `
anchor:
  x: 90
  y: 30
direction: bottom-up
alignToEnd: true
duration: 10s
progressBar:
  color: "#a6da95"
  width: 2
  outlineColor: "#494d64"
`
	configPath := filepath.Join(tmpDir, "demo.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.Anchor.X)
	assert.Equal(t, 30, cfg.Anchor.Y)
	assert.True(t, cfg.AlignToEnd)
	assert.Equal(t, "#a6da95", cfg.ProgressBar.Color)
	assert.Equal(t, 2, cfg.ProgressBar.Width)

	dir, err := cfg.ParseDirection()
	require.NoError(t, err)
	assert.Equal(t, toast.BottomUp, dir)
}

func TestLoadConfigEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseDirectionUnknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Direction = "sideways"
	_, err := cfg.ParseDirection()
	assert.Error(t, err)
}

func TestParseDurationInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Duration = "soon"
	_, err := cfg.ParseDuration()
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	cfg := DefaultConfig()
	toasts, err := cfg.Build()
	require.NoError(t, err)
	assert.NotNil(t, toasts)
}
