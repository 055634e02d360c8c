package weathercache

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
	"github.com/yanqian/outfit-advisor/pkg/metrics"
)

// Store persists weather readings keyed by normalized location.
type Store interface {
	Get(ctx context.Context, key string) (outfit.WeatherReading, bool, error)
	Set(ctx context.Context, key string, reading outfit.WeatherReading, ttl time.Duration) error
}

// Client is a read-through cache in front of another weather client.
// Store failures are logged and never fail the lookup.
type Client struct {
	next   outfit.WeatherClient
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

// NewClient wraps next with store.
func NewClient(next outfit.WeatherClient, store Store, ttl time.Duration, logger *slog.Logger) *Client {
	return &Client{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logger.With("component", "weathercache"),
	}
}

// Current implements outfit.WeatherClient.
func (c *Client) Current(ctx context.Context, loc outfit.Location) (outfit.WeatherReading, error) {
	key := Key(loc)
	start := time.Now()
	reading, ok, err := c.store.Get(ctx, key)
	switch {
	case err != nil:
		metrics.ObserveCacheLookup("error")
		c.logger.Warn("weather cache read failed", "key", key, "error", err)
	case ok:
		metrics.ObserveCacheLookup("hit")
		metrics.ObserveWeatherFetch("cache", time.Since(start))
		return reading, nil
	default:
		metrics.ObserveCacheLookup("miss")
	}

	reading, err = c.next.Current(ctx, loc)
	if err != nil {
		return outfit.WeatherReading{}, err
	}
	if err := c.store.Set(ctx, key, reading, c.ttl); err != nil {
		c.logger.Warn("weather cache write failed", "key", key, "error", err)
	}
	return reading, nil
}

// Key normalizes a location: coordinates rounded to two decimals, otherwise the lower-cased city.
func Key(loc outfit.Location) string {
	if loc.Coordinates != nil {
		return fmt.Sprintf("coord:%.2f,%.2f", loc.Coordinates.Lat, loc.Coordinates.Lon)
	}
	return "city:" + strings.ToLower(strings.Join(strings.Fields(loc.City), " "))
}

var _ outfit.WeatherClient = (*Client)(nil)
