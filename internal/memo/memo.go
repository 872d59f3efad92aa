// Package memo provides result caches keyed by structural identity. The
// gates package derives identities with the property that equal identities
// mean structurally identical subtrees; this package is the external cache
// that turns that property into deduplication. Only per-identity result
// values are stored, never trees.
// Implements: prd003-memo-store (Store, MemoryStore, SQLiteStore, Memoizer).
package memo

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Store errors.
var (
	ErrStoreClosed = errors.New("memo store is closed")
)

// Store is a cache of fold results keyed by algebra name and structural
// identity. Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the cached value for the given algebra and identity, and
	// whether one was present.
	Get(algebra string, id uuid.UUID) (string, bool, error)

	// Put records the value for the given algebra and identity, replacing
	// any previous entry.
	Put(algebra string, id uuid.UUID, value string) error

	// Len reports the number of cached entries.
	Len() (int, error)

	// Close releases the store. Further calls return ErrStoreClosed.
	Close() error
}

// MemoryStore is an in-process Store backed by a map.
type MemoryStore struct {
	mu      sync.RWMutex
	closed  bool
	entries map[memoKey]string
}

type memoKey struct {
	algebra string
	id      uuid.UUID
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[memoKey]string)}
}

// Get implements Store.
func (s *MemoryStore) Get(algebra string, id uuid.UUID) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, ErrStoreClosed
	}
	v, ok := s.entries[memoKey{algebra: algebra, id: id}]
	return v, ok, nil
}

// Put implements Store.
func (s *MemoryStore) Put(algebra string, id uuid.UUID, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	s.entries[memoKey{algebra: algebra, id: id}] = value
	return nil
}

// Len implements Store.
func (s *MemoryStore) Len() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrStoreClosed
	}
	return len(s.entries), nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	s.closed = true
	s.entries = nil
	return nil
}
