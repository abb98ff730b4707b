package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. It backs single-node
// deployments without Redis and test setups. Expired records linger
// until overwritten or read; reads treat them as absent.
type MemoryStore struct {
	mu      sync.RWMutex
	byToken map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byToken: make(map[string]Session),
	}
}

func (m *MemoryStore) Put(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byToken[s.Token] = s
	return nil
}

func (m *MemoryStore) GetByToken(_ context.Context, token string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.byToken[token]
	if !ok || !s.Active(time.Now()) {
		return nil, nil
	}

	out := s
	return &out, nil
}

func (m *MemoryStore) DeleteByToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byToken, token)
	return nil
}
