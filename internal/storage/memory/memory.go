// Package memory provides an in-memory storage.KV, used by tests and by the
// "memory" backend.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/pasajeros/internal/storage"
)

var _ storage.KV = (*Store)(nil)

// Store is a map guarded by a mutex.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// New returns an empty Store.
func New() *Store {
	return &Store{data: make(map[string]string)}
}

// Get implements storage.KV.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set implements storage.KV.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Close implements storage.KV. It is a no-op.
func (s *Store) Close() error { return nil }
