// Package storage persists learner progress through a key-value adapter. Every
// load is bounded by a timeout and falls back to an empty value; every save is
// best effort. Failures are logged here and never reach the scheduler.
package storage

import (
	"context"
	"sync"
)

// Keys used in the key-value store
const (
	ProgressKey     = "frenchie_progress"
	CurrentIndexKey = "frenchie_current_index"
	StreakKey       = "frenchie_streak"

	// owned by the voice settings, never touched here
	SelectedVoiceKey = "frenchie_selected_voice"
	SpeechRateKey    = "frenchie_speech_rate"
)

// KeyValue is the storage medium behind the Store. Implementations may be slow
// or fail; the Store guards every call.
type KeyValue interface {
	// Get returns the value for key and whether it exists
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// MemoryStore is a KeyValue kept in process memory
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
