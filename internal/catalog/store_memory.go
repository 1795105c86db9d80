// internal/catalog/store_memory.go
package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore is an in-process Store, used by the "memory" driver and in tests.
type MemoryStore struct {
	mu        sync.RWMutex
	landmarks map[int64]Landmark
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{landmarks: make(map[int64]Landmark)}
}

// EnsureSchema is a no-op; the map needs no schema.
func (m *MemoryStore) EnsureSchema(_ context.Context) error { return nil }

// Count returns the number of stored landmarks.
func (m *MemoryStore) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.landmarks), nil
}

// Insert adds landmarks atomically. Nothing is stored if any entry is
// invalid or its ID is already present.
func (m *MemoryStore) Insert(_ context.Context, landmarks []Landmark) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, l := range landmarks {
		if err := l.Validate(); err != nil {
			return err
		}
		if _, ok := m.landmarks[l.ID]; ok {
			return fmt.Errorf("insert landmark %d: duplicate id", l.ID)
		}
	}
	for _, l := range landmarks {
		m.landmarks[l.ID] = l
	}
	return nil
}

// ListLandmarks returns every landmark ordered by ID.
func (m *MemoryStore) ListLandmarks(_ context.Context) ([]Landmark, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Landmark, 0, len(m.landmarks))
	for _, l := range m.landmarks {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }
