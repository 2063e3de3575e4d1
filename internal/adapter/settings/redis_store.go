package settings

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zenetodev/emailclassifier/internal/domain/entity"
	"github.com/zenetodev/emailclassifier/internal/domain/service"
)

// settingsKey is the single key holding the JSON-serialized settings blob
const settingsKey = "emailclassifier:settings"

type redisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore creates a Redis-backed settings store
func NewRedisStore(client *redis.Client, logger *zap.Logger) service.SettingsStore {
	return &redisStore{client: client, logger: logger}
}

func (s *redisStore) Load(ctx context.Context) (*entity.Settings, error) {
	data, err := s.client.Get(ctx, settingsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.DefaultSettings(), nil
		}
		return nil, err
	}

	var loaded entity.Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		// Corrupt blob: discard silently, fall back to defaults
		s.logger.Debug("discarding unparseable settings blob", zap.Error(err))
		return entity.DefaultSettings(), nil
	}

	loaded.Normalize()
	return &loaded, nil
}

func (s *redisStore) Save(ctx context.Context, settings *entity.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, settingsKey, data, 0).Err()
}
