package store

import (
	"context"
	"sort"
	"sync"

	"github.com/tarangini/coastal-alerts-service/internal/domain"
)

// MemoryStore implements Store in process memory. It backs tests and
// database-less deployments of the query surface.
type MemoryStore struct {
	mu     sync.RWMutex
	alerts []domain.Alert
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ReplaceAll swaps the backing slice in one critical section; readers see
// the old set or the new one, never a mix.
func (s *MemoryStore) ReplaceAll(_ context.Context, alerts []domain.Alert) error {
	next := make([]domain.Alert, len(alerts))
	copy(next, alerts)
	// Same ordering contract as the Postgres store: time descending, input
	// order preserved among equal timestamps.
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Time.After(next[j].Time)
	})

	s.mu.Lock()
	s.alerts = next
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) ListAll(_ context.Context) ([]domain.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out, nil
}

func (s *MemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	s.alerts = nil
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
