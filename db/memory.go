package db

import (
	"context"
	"sync"

	"github.com/brndconsulting/nba-ui/model"
)

// NewMemoryStore returns a Store that lives only for the process. Used when
// no postgres connection string is configured; selections survive refreshes
// but not restarts.
func NewMemoryStore() Store {
	return &memoryStore{selections: make(map[string]model.ActiveSelection)}
}

type memoryStore struct {
	mu         sync.RWMutex
	selections map[string]model.ActiveSelection
}

func (m *memoryStore) GetSelection(_ context.Context, ownerID string) (*model.ActiveSelection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sel, ok := m.selections[ownerID]
	if !ok {
		return nil, ErrSelectionNotFound
	}
	return &sel, nil
}

func (m *memoryStore) SaveSelection(_ context.Context, ownerID string, sel model.ActiveSelection) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.selections[ownerID] = sel
	return nil
}

func (m *memoryStore) Close() {}
