package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "account", cfg.DefaultType)
	assert.Equal(t, 2, cfg.Indent)
	assert.False(t, cfg.MessagesByType)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
default_type: level
indent: 4
log:
  level: debug
  format: json
`), 0o644))

	t.Setenv("ADAPTIVE_MAPPER_INDENT", "0")
	t.Setenv("ADAPTIVE_MAPPER_MESSAGES_BY_TYPE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "level", cfg.DefaultType)
	assert.Equal(t, 0, cfg.Indent)
	assert.True(t, cfg.MessagesByType)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("ADAPTIVE_MAPPER_LOG_FORMAT", "xml")

	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log format")
}
