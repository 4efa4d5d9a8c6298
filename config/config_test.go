package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments-engine/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, -1, cfg.Output.Precision)
	assert.False(t, cfg.Reporting.IncludeAccountErrors)
}

func TestLoad(t *testing.T) {
	t.Run("OverridesDefaults", func(t *testing.T) {
		path := writeConfig(t, `
log:
  level: debug
output:
  precision: 4
reporting:
  include_account_errors: true
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 4, cfg.Output.Precision)
		assert.True(t, cfg.Reporting.IncludeAccountErrors)
	})

	t.Run("PartialFileKeepsDefaults", func(t *testing.T) {
		path := writeConfig(t, "output:\n  precision: 2\n")
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 2, cfg.Output.Precision)
	})

	t.Run("PrecisionOutOfRange", func(t *testing.T) {
		path := writeConfig(t, "output:\n  precision: 40\n")
		_, err := config.Load(path)
		assert.ErrorContains(t, err, "precision")
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		path := writeConfig(t, "log: [not a mapping\n")
		_, err := config.Load(path)
		assert.ErrorContains(t, err, "failed to parse")
	})
}
