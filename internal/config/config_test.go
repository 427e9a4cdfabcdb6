package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "C", cfg.Format)
	assert.Equal(t, 'C', cfg.FormatCode())
	assert.False(t, cfg.Registry.Enabled)
	assert.NotEmpty(t, cfg.Registry.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
format: m
show_class: true
show_identity: true
workers: 3
registry:
  enabled: true
  path: /tmp/ids.sqlite3
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 'M', cfg.FormatCode())
	assert.True(t, cfg.ShowClass)
	assert.True(t, cfg.ShowIdentity)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.Registry.Enabled)
	assert.Equal(t, "/tmp/ids.sqlite3", cfg.Registry.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("format: [unclosed"), 0644))
	_, err := Load(bad)
	assert.Error(t, err)

	wrongFormat := filepath.Join(dir, "format.yaml")
	require.NoError(t, os.WriteFile(wrongFormat, []byte("format: Z\n"), 0644))
	_, err = Load(wrongFormat)
	assert.ErrorContains(t, err, "invalid format")

	negative := filepath.Join(dir, "workers.yaml")
	require.NoError(t, os.WriteFile(negative, []byte("workers: -1\n"), 0644))
	_, err = Load(negative)
	assert.ErrorContains(t, err, "invalid workers")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Format = "I"
	cfg.Workers = 2

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("GCALC_FORMAT", func(t *testing.T) {
		t.Setenv("GCALC_FORMAT", "R")
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 'R', cfg.FormatCode())
	})

	t.Run("GCALC_REGISTRY enables the registry", func(t *testing.T) {
		t.Setenv("GCALC_REGISTRY", "/tmp/other.sqlite3")
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.True(t, cfg.Registry.Enabled)
		assert.Equal(t, "/tmp/other.sqlite3", cfg.Registry.Path)
	})

	t.Run("GCALC_WORKERS ignores garbage", func(t *testing.T) {
		t.Setenv("GCALC_WORKERS", "lots")
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Workers)
	})

	t.Run("GCALC_LOG_LEVEL", func(t *testing.T) {
		t.Setenv("GCALC_LOG_LEVEL", "error")
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Logging.Level)
	})
}

func TestNewLogger(t *testing.T) {
	logger, err := LoggingConfig{Level: "error"}.NewLogger(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))

	logger, err = LoggingConfig{Level: "error"}.NewLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = LoggingConfig{Level: "loud"}.NewLogger(false)
	assert.Error(t, err)
}
