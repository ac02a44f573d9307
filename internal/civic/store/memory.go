package store

import (
	"context"
	"strings"
	"sync"

	"civicapi/internal/civic/models"
	"civicapi/internal/civic/service"
)

// MemoryStore is an in-memory civic store for tests and local runs.
type MemoryStore struct {
	mu     sync.RWMutex
	states []models.State
}

// NewMemory constructs an empty in-memory civic store.
func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

// AddState registers a state record.
func (s *MemoryStore) AddState(st models.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = append(s.states, st)
}

// GetState returns the state whose name, slug or code matches key.
func (s *MemoryStore) GetState(_ context.Context, key string) (models.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.states {
		if strings.EqualFold(st.StateName, key) || st.StateNameSlug == key || st.StateCode == key {
			return st, nil
		}
	}
	return models.State{}, service.ErrStateNotFound
}
