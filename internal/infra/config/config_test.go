package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("WEATHER_API_KEY", "abc123")
	t.Setenv("WEATHER_CACHE_ENABLED", "true")
	t.Setenv("WEATHER_CACHE_TTL", "90s")
	t.Setenv("HISTORY_LIMIT", "3")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, "abc123", cfg.Weather.APIKey)
	require.True(t, cfg.Weather.Cache.Enabled)
	require.Equal(t, 90*time.Second, cfg.Weather.Cache.TTL)
	require.Equal(t, 3, cfg.History.Limit)
	require.Equal(t, ModelSourceFile, cfg.Model.Source)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
model:
  source: s3
  s3:
    endpoint: https://example.r2.cloudflarestorage.com
    bucket: models
    key: outfit/v2.yaml
`), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, ModelSourceS3, cfg.Model.Source)
	require.Equal(t, "models", cfg.Model.S3.Bucket)
	require.Equal(t, "auto", cfg.Model.S3.Region)
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Model.Source = "ftp"
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.Model.Source = ModelSourceS3
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.HTTP.RateLimit.Burst = 0
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.History.Limit = 0
	require.Error(t, cfg.Validate())
}
