package weathercache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
)

// ValkeyStore persists readings in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "weather"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

type storedReading struct {
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
}

func (s *ValkeyStore) Get(ctx context.Context, key string) (outfit.WeatherReading, bool, error) {
	payload, err := s.client.Do(ctx, s.client.B().Get().Key(s.entryKey(key)).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return outfit.WeatherReading{}, false, nil
		}
		return outfit.WeatherReading{}, false, err
	}
	var stored storedReading
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return outfit.WeatherReading{}, false, err
	}
	return outfit.WeatherReading{
		Temperature: stored.Temperature,
		Description: stored.Description,
		Location:    stored.Location,
	}, true, nil
}

func (s *ValkeyStore) Set(ctx context.Context, key string, reading outfit.WeatherReading, ttl time.Duration) error {
	payload, err := json.Marshal(storedReading{
		Temperature: reading.Temperature,
		Description: reading.Description,
		Location:    reading.Location,
	})
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.entryKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

var _ Store = (*ValkeyStore)(nil)
