package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfit-advisor/internal/infra/classifier"
	"github.com/yanqian/outfit-advisor/internal/infra/config"
	"github.com/yanqian/outfit-advisor/internal/infra/historyrepo"
	"github.com/yanqian/outfit-advisor/internal/infra/weather/openweather"
	"github.com/yanqian/outfit-advisor/internal/infra/weathercache"
)

func TestProvideWeatherClientVariants(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Weather: config.WeatherConfig{APIBaseURL: "http://example.invalid"}}

	client, cleanup := provideWeatherClient(cfg, logger)
	defer cleanup()
	require.IsType(t, &openweather.Client{}, client)

	cfg.Weather.Cache.Enabled = true
	cached, cleanupCached := provideWeatherClient(cfg, logger)
	defer cleanupCached()
	require.IsType(t, &weathercache.Client{}, cached)
}

func TestProvideHistoryRepositoryFallsBackToMemory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}

	repo, cleanup := provideHistoryRepository(cfg, logger)
	defer cleanup()
	require.IsType(t, &historyrepo.MemoryRepository{}, repo)

	cfg.History.Postgres.DSN = "::not a dsn::"
	repo, cleanup = provideHistoryRepository(cfg, logger)
	defer cleanup()
	require.IsType(t, &historyrepo.MemoryRepository{}, repo)
}

func TestProvideModelSource(t *testing.T) {
	src, err := provideModelSource(&config.Config{Model: config.ModelConfig{Source: config.ModelSourceFile, Path: "m.yaml"}})
	require.NoError(t, err)
	require.Equal(t, classifier.FileSource{Path: "m.yaml"}, src)

	src, err = provideModelSource(&config.Config{Model: config.ModelConfig{
		Source: config.ModelSourceS3,
		S3:     config.ObjectStoreCfg{Endpoint: "https://s3.example.com", Bucket: "models", Key: "outfit.yaml", Region: "auto"},
	}})
	require.NoError(t, err)
	require.Equal(t, "s3://models/outfit.yaml", src.String())
}
