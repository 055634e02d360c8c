package weathercache

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
)

type entry struct {
	reading   outfit.WeatherReading
	expiresAt time.Time
}

// MemoryStore keeps readings in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]entry), now: time.Now}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key string) (outfit.WeatherReading, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return outfit.WeatherReading{}, false, nil
	}
	if !e.expiresAt.IsZero() && !e.expiresAt.After(s.now()) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return outfit.WeatherReading{}, false, nil
	}
	return e.reading, true, nil
}

// Set implements Store. A non-positive ttl never expires.
func (s *MemoryStore) Set(_ context.Context, key string, reading outfit.WeatherReading, ttl time.Duration) error {
	exp := time.Time{}
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[key] = entry{reading: reading, expiresAt: exp}
	s.mu.Unlock()
	return nil
}

var _ Store = (*MemoryStore)(nil)
