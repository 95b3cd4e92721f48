package repo

import (
	"context"
	"sync"
)

// Memory is a process-local Repo used when Postgres is disabled
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemory creates an empty in-memory cache
func NewMemory() *Memory { return &Memory{entries: make(map[string]Entry)} }

var _ Repo = (*Memory)(nil)

// Get returns the entry for url if present
func (m *Memory) Get(_ context.Context, url string) (Entry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[url]
	return e, ok, nil
}

// Put stores e, replacing any previous entry for the same url
func (m *Memory) Put(_ context.Context, e Entry) error {
	m.mu.Lock()
	m.entries[e.URL] = e
	m.mu.Unlock()
	return nil
}

// Delete removes url
func (m *Memory) Delete(_ context.Context, url string) error {
	m.mu.Lock()
	delete(m.entries, url)
	m.mu.Unlock()
	return nil
}

// Len reports how many entries are held
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
