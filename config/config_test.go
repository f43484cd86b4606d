package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvtree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Engine.Root)
	assert.Equal(t, 1024, cfg.Engine.CheckEvery)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, "auto", cfg.Log.Format)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
  format: json
engine:
  max_nodes: 500
  root: 3
telemetry:
  tracing: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, 500, cfg.Engine.MaxNodes)
	assert.Equal(t, 3, cfg.Engine.Root)
	assert.Equal(t, 1024, cfg.Engine.CheckEvery, "unset keys keep defaults")
	assert.True(t, cfg.Telemetry.Tracing)

	t.Setenv("LVTREE_ENGINE_ROOT", "7")
	t.Setenv("LVTREE_LOG_LEVEL", "WARN")
	t.Setenv("LVTREE_TELEMETRY_TRACING", "false")
	t.Setenv("LVTREE_TELEMETRY_METRICS_OUT", "/tmp/m.prom")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Engine.Root)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
	assert.False(t, cfg.Telemetry.Tracing)
	assert.Equal(t, "/tmp/m.prom", cfg.Telemetry.MetricsOut)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(writeFile(t, "engine:\n  root: 0\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "log:\n  format: xml\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "engine: [oops"))
	assert.Error(t, err)

	t.Setenv("LVTREE_ENGINE_MAX_NODES", "many")
	_, err = config.Load("")
	assert.Error(t, err)
}
