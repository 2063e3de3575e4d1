package settings

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/zenetodev/emailclassifier/internal/domain/entity"
	"github.com/zenetodev/emailclassifier/internal/domain/service"
)

type memoryStore struct {
	mu   sync.RWMutex
	blob []byte
}

// NewMemoryStore creates an in-memory settings store. Used when Redis is
// not configured; settings then live only for the process lifetime.
func NewMemoryStore() service.SettingsStore {
	return &memoryStore{}
}

func (s *memoryStore) Load(_ context.Context) (*entity.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.blob == nil {
		return entity.DefaultSettings(), nil
	}

	var loaded entity.Settings
	if err := json.Unmarshal(s.blob, &loaded); err != nil {
		return entity.DefaultSettings(), nil
	}
	loaded.Normalize()
	return &loaded, nil
}

func (s *memoryStore) Save(_ context.Context, settings *entity.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = data
	return nil
}
