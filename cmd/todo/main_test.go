package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.toml")
	require.NoError(t, os.WriteFile(path, []byte(`api_url = "http://example.com:9000"`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com:9000", cfg.APIURL)
}

func TestLoadConfigEnvFallback(t *testing.T) {
	t.Setenv("TODO_API_URL", "http://example.com:7000")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com:7000", cfg.APIURL)
}

func TestLoadConfigDefault(t *testing.T) {
	t.Setenv("TODO_API_URL", "")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.APIURL)
}

func TestLoadConfigBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.toml")
	require.NoError(t, os.WriteFile(path, []byte(`api_url = [`), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}
