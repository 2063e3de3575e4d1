package repository

import (
	"context"

	"github.com/zenetodev/emailclassifier/internal/domain/entity"
)

// HistoryRepository defines the interface for classification history storage.
// Implementations enforce the entity.MaxHistoryEntries cap with FIFO
// eviction: appending beyond the cap drops the oldest entry.
type HistoryRepository interface {
	// Append stores a new entry, evicting the oldest one at capacity
	Append(ctx context.Context, entry *entity.HistoryEntry) error

	// List retrieves entries newest first with pagination
	List(ctx context.Context, limit, offset int) ([]*entity.HistoryEntry, int64, error)

	// Count returns the number of stored entries
	Count(ctx context.Context) (int64, error)

	// Clear removes all entries
	Clear(ctx context.Context) error
}
