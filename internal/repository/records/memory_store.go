package records

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"servizi-facili-be/internal/pkg/logger"
)

// MemoryStore keeps records in an expiring in-process cache. Records are
// stored as JSON so the corrupt-record path behaves identically across
// backends.
type MemoryStore struct {
	cache  *cache.Cache
	logger logger.ILogger
}

func NewMemoryStore(log logger.ILogger) *MemoryStore {
	// Sessions are short-lived; purge abandoned records after a day.
	return &MemoryStore{
		cache:  cache.New(24*time.Hour, 10*time.Minute),
		logger: log,
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionId uuid.UUID, name string, out any) (bool, error) {
	raw, found := s.cache.Get(recordKey(sessionId, name))
	if !found {
		return false, nil
	}
	data, ok := raw.([]byte)
	if !ok {
		return false, nil
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

func (s *MemoryStore) Put(_ context.Context, sessionId uuid.UUID, name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.cache.Set(recordKey(sessionId, name), data, cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionId uuid.UUID, name string) error {
	s.cache.Delete(recordKey(sessionId, name))
	return nil
}

func recordKey(sessionId uuid.UUID, name string) string {
	return sessionId.String() + ":" + name
}
