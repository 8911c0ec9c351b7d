package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is an in-memory Store used in tests and for throwaway runs.
// Records round-trip through JSON so callers get the same value-copy
// isolation the durable drivers provide.
type MemStore struct {
	mu          sync.RWMutex
	collections map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{collections: make(map[string][]byte)}
}

func (s *MemStore) Load(collection string, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode collection %s: %w", collection, err)
	}
	return nil
}

func (s *MemStore) Save(collection string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}
	s.mu.Lock()
	s.collections[collection] = data
	s.mu.Unlock()
	return nil
}
