package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
)

// MemoryStore is an in-process Store used in tests and as the fallback when
// no database is configured. Values are kept as marshalled JSON so reads see
// copies, never shared references.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) GetJSON(_ context.Context, key string, dest interface{}) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrapf(err, "failed to decode value at key %q", key)
	}
	return true, nil
}

func (s *MemoryStore) SetJSON(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode value for key %q", key)
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Has(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	_, ok := s.data[key]
	s.mu.RUnlock()
	return ok, nil
}
