package historyrepo

import (
	"context"
	"sync"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
)

const defaultCapacity = 200

// MemoryRepository keeps the newest records in a bounded in-process log.
type MemoryRepository struct {
	mu       sync.RWMutex
	records  []outfit.HistoryRecord
	capacity int
}

// NewMemoryRepository constructs an empty repository. capacity<=0 uses a default.
func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &MemoryRepository{capacity: capacity}
}

// Save implements outfit.HistoryRepository.
func (r *MemoryRepository) Save(_ context.Context, record outfit.HistoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	if overflow := len(r.records) - r.capacity; overflow > 0 {
		r.records = append([]outfit.HistoryRecord(nil), r.records[overflow:]...)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]outfit.HistoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]outfit.HistoryRecord, 0, limit)
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

var _ outfit.HistoryRepository = (*MemoryRepository)(nil)
