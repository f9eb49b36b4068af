package repositories

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an in-process key-value store
func NewMemoryStore() *memoryStore {
	return &memoryStore{
		values: make(map[string]string),
	}
}

// Get returns the value stored under key
func (s *memoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

// Put stores value under key
func (s *memoryStore) Put(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}
