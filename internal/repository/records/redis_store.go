package records

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"servizi-facili-be/internal/pkg/logger"
)

// RedisStore persists records in Redis so sessions survive process
// restarts. Keys expire with the same horizon as the in-memory backend.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.ILogger
}

func NewRedisStore(client *redis.Client, log logger.ILogger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    24 * time.Hour,
		logger: log,
	}
}

func (s *RedisStore) Get(ctx context.Context, sessionId uuid.UUID, name string, out any) (bool, error) {
	data, err := s.client.Get(ctx, redisKey(sessionId, name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("records", "Discarding corrupt record", map[string]interface{}{
			"session_id": sessionId.String(),
			"record":     name,
			"error":      err.Error(),
		})
		return false, nil
	}
	return true, nil
}

func (s *RedisStore) Put(ctx context.Context, sessionId uuid.UUID, name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKey(sessionId, name), data, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sessionId uuid.UUID, name string) error {
	return s.client.Del(ctx, redisKey(sessionId, name)).Err()
}

func redisKey(sessionId uuid.UUID, name string) string {
	return "assistant:records:" + sessionId.String() + ":" + name
}
