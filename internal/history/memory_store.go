package history

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Load(ctx context.Context, owner string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[owner]
	return v, ok, nil
}

func (m *MemoryStore) Save(ctx context.Context, owner, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[owner] = value
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, owner)
	return nil
}
