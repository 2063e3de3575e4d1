package memory

import (
	"context"
	"sync"

	"github.com/zenetodev/emailclassifier/internal/domain/entity"
	"github.com/zenetodev/emailclassifier/internal/domain/repository"
)

type historyRepository struct {
	mu      sync.RWMutex
	entries []*entity.HistoryEntry
	cap     int
}

// NewHistoryRepository creates an in-memory history repository bounded at
// entity.MaxHistoryEntries. Used when no database is configured.
func NewHistoryRepository() repository.HistoryRepository {
	return &historyRepository{cap: entity.MaxHistoryEntries}
}

func (r *historyRepository) Append(_ context.Context, entry *entity.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	if len(r.entries) > r.cap {
		// FIFO eviction: drop the oldest
		r.entries = r.entries[len(r.entries)-r.cap:]
	}
	return nil
}

func (r *historyRepository) List(_ context.Context, limit, offset int) ([]*entity.HistoryEntry, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := int64(len(r.entries))

	// Newest first
	start := len(r.entries) - 1 - offset
	var out []*entity.HistoryEntry
	for i := start; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, total, nil
}

func (r *historyRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.entries)), nil
}

func (r *historyRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	return nil
}
