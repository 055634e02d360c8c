package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Model bundle sources.
const (
	ModelSourceFile = "file"
	ModelSourceS3   = "s3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Weather WeatherConfig `yaml:"weather"`
	Model   ModelConfig   `yaml:"model"`
	History HistoryConfig `yaml:"history"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address         string          `yaml:"address"`
	ReadTimeout     time.Duration   `yaml:"readTimeout"`
	WriteTimeout    time.Duration   `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration   `yaml:"shutdownTimeout"`
	RateLimit       RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// WeatherConfig points at the OpenWeatherMap current-weather endpoint.
type WeatherConfig struct {
	APIBaseURL string        `yaml:"apiBaseUrl"`
	APIKey     string        `yaml:"apiKey"`
	Timeout    time.Duration `yaml:"timeout"`
	Cache      CacheConfig   `yaml:"cache"`
}

// CacheConfig enables the optional Valkey/memory weather cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Addr    string        `yaml:"addr"`
	TTL     time.Duration `yaml:"ttl"`
}

// ModelConfig locates the classifier bundle.
type ModelConfig struct {
	Source string         `yaml:"source"`
	Path   string         `yaml:"path"`
	S3     ObjectStoreCfg `yaml:"s3"`
}

// ObjectStoreCfg holds S3-compatible bucket settings.
type ObjectStoreCfg struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Key       string `yaml:"key"`
}

// HistoryConfig controls the recommendation log.
type HistoryConfig struct {
	Limit    int            `yaml:"limit"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("WEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("WEATHER_API_BASE_URL"); v != "" {
		cfg.Weather.APIBaseURL = v
	}
	if v := os.Getenv("WEATHER_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Weather.Timeout = parsed
		}
	}
	if v := os.Getenv("WEATHER_CACHE_ENABLED"); v != "" {
		cfg.Weather.Cache.Enabled = parseBool(v)
	}
	if v := os.Getenv("WEATHER_CACHE_ADDR"); v != "" {
		cfg.Weather.Cache.Addr = v
	}
	if v := os.Getenv("WEATHER_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Weather.Cache.TTL = parsed
		}
	}
	if v := os.Getenv("MODEL_SOURCE"); v != "" {
		cfg.Model.Source = strings.ToLower(v)
	}
	if v := os.Getenv("MODEL_PATH"); v != "" {
		cfg.Model.Path = v
	}
	if v := os.Getenv("MODEL_S3_ENDPOINT"); v != "" {
		cfg.Model.S3.Endpoint = v
	}
	if v := os.Getenv("MODEL_S3_ACCESS_KEY"); v != "" {
		cfg.Model.S3.AccessKey = v
	}
	if v := os.Getenv("MODEL_S3_SECRET_KEY"); v != "" {
		cfg.Model.S3.SecretKey = v
	}
	if v := os.Getenv("MODEL_S3_BUCKET"); v != "" {
		cfg.Model.S3.Bucket = v
	}
	if v := os.Getenv("MODEL_S3_REGION"); v != "" {
		cfg.Model.S3.Region = v
	}
	if v := os.Getenv("MODEL_S3_KEY"); v != "" {
		cfg.Model.S3.Key = v
	}
	if v := os.Getenv("HISTORY_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.Limit = parsed
		}
	}
	if v := os.Getenv("HISTORY_POSTGRES_DSN"); v != "" {
		cfg.History.Postgres.DSN = v
	}
	if v := os.Getenv("HISTORY_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("HISTORY_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.Postgres.MinConns = int32(parsed)
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:         ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Weather: WeatherConfig{
			APIBaseURL: "https://api.openweathermap.org/data/2.5/weather",
			Timeout:    10 * time.Second,
			Cache: CacheConfig{
				Enabled: false,
				TTL:     10 * time.Minute,
			},
		},
		Model: ModelConfig{
			Source: ModelSourceFile,
			Path:   "configs/model/outfit_model.yaml",
			S3: ObjectStoreCfg{
				Region: "auto",
				Key:    "outfit_model.yaml",
			},
		},
		History: HistoryConfig{
			Limit: 10,
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if strings.TrimSpace(c.Weather.APIBaseURL) == "" {
		return errors.New("weather.apiBaseUrl cannot be empty")
	}
	if c.Weather.Timeout < 0 {
		return errors.New("weather.timeout cannot be negative")
	}
	if c.Weather.Cache.TTL < 0 {
		return errors.New("weather.cache.ttl cannot be negative")
	}
	switch c.Model.Source {
	case ModelSourceFile:
		if strings.TrimSpace(c.Model.Path) == "" {
			return errors.New("model.path cannot be empty when model.source is file")
		}
	case ModelSourceS3:
		if strings.TrimSpace(c.Model.S3.Endpoint) == "" || strings.TrimSpace(c.Model.S3.Bucket) == "" || strings.TrimSpace(c.Model.S3.Key) == "" {
			return errors.New("model.s3.endpoint, bucket and key are required when model.source is s3")
		}
	default:
		return fmt.Errorf("model.source must be %q or %q", ModelSourceFile, ModelSourceS3)
	}
	if c.History.Limit <= 0 {
		return errors.New("history.limit must be positive")
	}
	return nil
}
