package adapter

import (
	"context"
	"sync"
)

// Memory is an in-memory Adapter implementation.
// It stores records in a map without any external dependency.
// Thread-safe for concurrent reads and writes.
type Memory struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemory creates a new in-memory adapter.
func NewMemory() *Memory {
	return &Memory{
		records: make(map[string][]byte),
	}
}

// Save persists the record.
func (m *Memory) Save(_ context.Context, rec *Record) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy to prevent external mutation
	copied := make([]byte, len(rec.Content))
	copy(copied, rec.Content)
	m.records[rec.Key] = copied
	return true, nil
}

// Load returns the record stored under key.
func (m *Memory) Load(_ context.Context, key string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.records[key]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent external mutation
	copied := make([]byte, len(data))
	copy(copied, data)

	return &Record{Key: key, Content: copied}, nil
}

// Init constructs a new, empty record bound to key. Nothing is stored
// until the record is saved.
func (m *Memory) Init(_ context.Context, key string, _ bool) (*Record, error) {
	return &Record{Key: key}, nil
}

// Delete removes the record stored under key.
func (m *Memory) Delete(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[key]; !ok {
		return false, ErrNotFound
	}
	delete(m.records, key)
	return true, nil
}

// Len returns the number of stored records.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
