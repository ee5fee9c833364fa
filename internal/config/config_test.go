package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, "https://geocoding.openapi.it", cfg.Geocoding.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Geocoding.RequestTimeout)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Cache.GeocodeCacheTTL)
	assert.Equal(t, 50, cfg.History.DefaultLimit)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFrom_EnvFileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "GEOCODING_API_TOKEN=file-token\nAPI_PORT=9090\nGEOCODING_BASE_URL=http://geo.local/\nREDIS_ENABLED=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("API_PORT", "9191")
	t.Setenv("GEOCODING_REQUEST_TIMEOUT", "3")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.Geocoding.APIToken)
	assert.Equal(t, 9191, cfg.Server.Port, "environment overrides the file")
	assert.Equal(t, "http://geo.local", cfg.Geocoding.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Geocoding.RequestTimeout)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}

func TestLoadFrom_Invalid(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("API_PORT", "70000")
		_, err := LoadFrom(missing)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "API_PORT")
	})

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("GEOCODING_REQUEST_TIMEOUT", "0")
		_, err := LoadFrom(missing)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "GEOCODING_REQUEST_TIMEOUT")
	})
}
