// File: /repositories/storage_backend.go
package repositories

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrKeyNotFound = errors.New("storage key not found")

// StorageBackend persists string values per session and key.
type StorageBackend interface {
	Get(ctx context.Context, sessionID, key string) (string, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Delete(ctx context.Context, sessionID string, keys ...string) error
	Clear(ctx context.Context, sessionID string) error
}

// MemoryBackend keeps everything in process memory. It is the default backend
// and the one used by tests.
type MemoryBackend struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{sessions: make(map[string]map[string]string)}
}

func (m *MemoryBackend) Get(_ context.Context, sessionID, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.sessions[sessionID][key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (m *MemoryBackend) Set(_ context.Context, sessionID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, ok := m.sessions[sessionID]
	if !ok {
		entries = make(map[string]string)
		m.sessions[sessionID] = entries
	}
	entries[key] = value
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, sessionID string, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.sessions[sessionID], key)
	}
	return nil
}

func (m *MemoryBackend) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

const backendTimeout = 5 * time.Second
