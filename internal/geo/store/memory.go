package store

import (
	"context"
	"sync"

	"civicapi/internal/geo"
)

// MemoryStore is an in-memory zip code store for tests and local runs.
type MemoryStore struct {
	mu        sync.RWMutex
	locations map[string]geo.Location
}

// NewMemory constructs an empty in-memory zip code store.
func NewMemory() *MemoryStore {
	return &MemoryStore{locations: make(map[string]geo.Location)}
}

// Add registers a zip code location.
func (s *MemoryStore) Add(zipcode string, loc geo.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations[zipcode] = loc
}

// Lookup returns the location for a zip code.
func (s *MemoryStore) Lookup(_ context.Context, zipcode string) (geo.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	loc, ok := s.locations[zipcode]
	if !ok {
		return geo.Location{}, geo.ErrNotFound
	}
	return loc, nil
}
