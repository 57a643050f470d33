package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, int64(10<<20), cfg.GitHub.MaxBodyBytes)
	assert.Equal(t, 50, cfg.Pagination.DefaultSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  address: ":9090"
github:
  timeout: 2s
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))
	t.Setenv("GISTS_LOG_LEVEL", "warn")
	t.Setenv("GISTS_PAGINATION_DEFAULT_SIZE", "20")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 2*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 20, cfg.Pagination.DefaultSize)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad log level", key: "GISTS_LOG_LEVEL", val: "loud"},
		{name: "page size too large", key: "GISTS_PAGINATION_DEFAULT_SIZE", val: "500"},
		{name: "base url not a url", key: "GISTS_GITHUB_BASE_URL", val: "not a url"},
		{name: "zero body limit", key: "GISTS_GITHUB_MAX_BODY_BYTES", val: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load(t.TempDir())
			assert.Error(t, err)
		})
	}
}
