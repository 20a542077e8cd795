package store

import (
    "context"
    "sync"
)

// MemoryProvider keeps snapshots in an in-process map. It backs tests
// and serves as the degraded mode when redis cannot be reached at
// startup: sessions then survive only as long as the process does.
type MemoryProvider struct {
    mu    sync.Mutex
    snaps map[string]Snapshot
}

// NewMemoryProvider returns an empty in-memory provider.
func NewMemoryProvider() *MemoryProvider {
    return &MemoryProvider{snaps: make(map[string]Snapshot)}
}

// For returns a Store view bound to the given session ID.
func (p *MemoryProvider) For(sessionID string) Store {
    return &memoryStore{provider: p, key: sessionID}
}

type memoryStore struct {
    provider *MemoryProvider
    key      string
}

func (m *memoryStore) Get(_ context.Context) (*Snapshot, error) {
    m.provider.mu.Lock()
    defer m.provider.mu.Unlock()
    s, ok := m.provider.snaps[m.key]
    if !ok {
        return nil, nil
    }
    cp := s
    return &cp, nil
}

func (m *memoryStore) Set(_ context.Context, s Snapshot) error {
    m.provider.mu.Lock()
    defer m.provider.mu.Unlock()
    m.provider.snaps[m.key] = s
    return nil
}

func (m *memoryStore) Clear(_ context.Context) error {
    m.provider.mu.Lock()
    defer m.provider.mu.Unlock()
    delete(m.provider.snaps, m.key)
    return nil
}
