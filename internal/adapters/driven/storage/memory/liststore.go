// Package memory provides in-memory driven adapters for testing.
package memory

import (
	"sync"

	"github.com/jgold-code/shelfaware/internal/core/ports/driven"
)

// Ensure ListStore implements the interface.
var _ driven.ListStore = (*ListStore)(nil)

// ListStore is an in-memory implementation of driven.ListStore for testing.
type ListStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewListStore creates a new in-memory list store.
func NewListStore() *ListStore {
	return &ListStore{
		values: make(map[string]string),
	}
}

// Get retrieves the value stored under key.
func (s *ListStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok, nil
}

// Set stores value under key.
func (s *ListStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Close releases resources (no-op for memory store).
func (s *ListStore) Close() error {
	return nil
}
