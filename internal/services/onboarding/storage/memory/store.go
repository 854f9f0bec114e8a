// Package memory provides an in-process key-value store.
package memory

import (
	"context"
	"sync"

	"github.com/louisbranch/careerpath/internal/services/onboarding/storage"
)

// Store keeps items in a map. The zero value is ready to use.
type Store struct {
	mu    sync.RWMutex
	items map[string]string
}

// New returns an empty store.
func New() *Store {
	return &Store{items: make(map[string]string)}
}

// GetItem returns the value stored under key.
func (s *Store) GetItem(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.items[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return value, nil
}

// SetItem stores value under key, replacing any previous value.
func (s *Store) SetItem(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items == nil {
		s.items = make(map[string]string)
	}
	s.items[key] = value
	return nil
}

// DeleteItem removes key.
func (s *Store) DeleteItem(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// Len reports how many keys are stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
