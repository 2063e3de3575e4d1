package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/zenetodev/emailclassifier/internal/domain/entity"
	"github.com/zenetodev/emailclassifier/internal/domain/repository"
)

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a Postgres-backed history repository
func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Append(ctx context.Context, entry *entity.HistoryEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		var total int64
		if err := tx.Model(&entity.HistoryEntry{}).Count(&total).Error; err != nil {
			return err
		}
		if total <= entity.MaxHistoryEntries {
			return nil
		}

		// FIFO eviction of everything beyond the cap
		var victims []*entity.HistoryEntry
		if err := tx.Order("created_at ASC, id ASC").
			Limit(int(total - entity.MaxHistoryEntries)).
			Find(&victims).Error; err != nil {
			return err
		}
		for _, victim := range victims {
			if err := tx.Delete(victim).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *historyRepository) List(ctx context.Context, limit, offset int) ([]*entity.HistoryEntry, int64, error) {
	var entries []*entity.HistoryEntry
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.HistoryEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *historyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.HistoryEntry{}).Count(&count).Error
	return count, err
}

func (r *historyRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&entity.HistoryEntry{}).Error
}
