// Package store provides the concurrent in-memory storage the services use
// as their process-local database. Records live for the process lifetime;
// there is no persistence across restarts.
package store

import "sync"

// Store is a concurrency-safe mapping from record identifier to record.
//
// Consistency guarantee: a single RWMutex guards the map, so writes are
// linearizable per key and All returns a point-in-time snapshot consistent
// with some serialization of concurrent inserts. A successful Put is never
// lost, and readers never observe a partially-constructed record.
type Store[T any] struct {
	mu      sync.RWMutex
	records map[string]T
}

// New creates an empty Store.
func New[T any]() *Store[T] {
	return &Store[T]{
		records: make(map[string]T),
	}
}

// Put inserts the record under the given identifier, overwriting any
// existing record with the same identifier.
func (s *Store[T]) Put(id string, record T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = record
}

// Get returns the record stored under the given identifier, and whether
// it exists.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	return record, ok
}

// All returns a snapshot of all current records. The returned slice is a
// copy owned by the caller; iteration order is unspecified. The slice is
// never nil, so an empty store serializes as an empty JSON array.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]T, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}
	return records
}

// Len returns the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Clear removes all records. It exists as a reset hook for tests; nothing
// in the request path deletes records.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]T)
}
