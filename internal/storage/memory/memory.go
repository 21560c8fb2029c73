package memory

import (
	"context"
	"errors"
	"sync"
)

var ErrClosed = errors.New("memory: store is closed")

// Store is an in-memory key-value medium. Values are copied on the way in and
// on the way out so callers can never alias stored bytes.
type Store struct {
	mu      sync.RWMutex
	entries map[string][]byte
	closed  bool
}

func NewStore() *Store {
	return &Store{
		entries: make(map[string][]byte),
	}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, false, ErrClosed
	}

	value, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (s *Store) SetMany(_ context.Context, entries map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	for key, value := range entries {
		s.entries[key] = append([]byte(nil), value...)
	}
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
