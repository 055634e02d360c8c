package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
	"github.com/yanqian/outfit-advisor/internal/infra/classifier"
	"github.com/yanqian/outfit-advisor/internal/infra/config"
	"github.com/yanqian/outfit-advisor/internal/infra/historyrepo"
	"github.com/yanqian/outfit-advisor/internal/infra/weather/openweather"
	"github.com/yanqian/outfit-advisor/internal/infra/weathercache"
)

func provideOutfitConfig(cfg *config.Config) outfit.Config {
	return outfit.Config{HistoryLimit: cfg.History.Limit}
}

func provideModelSource(cfg *config.Config) (classifier.Source, error) {
	if cfg.Model.Source == config.ModelSourceS3 {
		s3 := cfg.Model.S3
		return classifier.NewObjectSource(s3.Endpoint, s3.AccessKey, s3.SecretKey, s3.Bucket, s3.Region, s3.Key)
	}
	return classifier.FileSource{Path: cfg.Model.Path}, nil
}

func provideArtifacts(src classifier.Source, logger *slog.Logger) (*outfit.Artifacts, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return classifier.Load(ctx, src, logger.With("component", "classifier"))
}

func provideWeatherClient(cfg *config.Config, logger *slog.Logger) (outfit.WeatherClient, func()) {
	if strings.TrimSpace(cfg.Weather.APIKey) == "" {
		logger.Warn("WEATHER_API_KEY not set, weather lookups will be rejected upstream")
	}
	api := openweather.NewClient(cfg.Weather.APIBaseURL, cfg.Weather.APIKey, cfg.Weather.Timeout)
	if !cfg.Weather.Cache.Enabled {
		return api, func() {}
	}
	store, cleanup := provideWeatherStore(cfg, logger)
	return weathercache.NewClient(api, store, cfg.Weather.Cache.TTL, logger), cleanup
}

func provideWeatherStore(cfg *config.Config, logger *slog.Logger) (weathercache.Store, func()) {
	addr := strings.TrimSpace(cfg.Weather.Cache.Addr)
	if addr == "" {
		logger.Info("weather cache addr not set, using memory store")
		return weathercache.NewMemoryStore(), func() {}
	}
	opt, err := buildValkeyOptions(addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return weathercache.NewMemoryStore(), func() {}
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return weathercache.NewMemoryStore(), func() {}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return weathercache.NewMemoryStore(), func() {}
	}
	logger.Info("weather valkey cache enabled", "addr", addr)
	return weathercache.NewValkeyStore(client, "weather"), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideHistoryRepository(cfg *config.Config, logger *slog.Logger) (outfit.HistoryRepository, func()) {
	fallback := historyrepo.NewMemoryRepository(0)
	dsn := strings.TrimSpace(cfg.History.Postgres.DSN)
	if dsn == "" {
		logger.Info("history postgres dsn not set, using memory repository")
		return fallback, func() {}
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback, func() {}
	}
	if cfg.History.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.History.Postgres.MaxConns
	}
	if cfg.History.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.History.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback, func() {}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback, func() {}
	}
	repo := historyrepo.NewPostgresRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("history schema setup failed, using memory repository", "error", err)
		pool.Close()
		return fallback, func() {}
	}
	logger.Info("history postgres repository enabled")
	return repo, pool.Close
}
