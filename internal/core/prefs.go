package core

import "sync"

// Preferences is a small persisted key/value store. Values are opaque
// strings; callers own their encoding.
type Preferences interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MemoryPreferences is an in-process Preferences used when no database is
// available and in tests.
type MemoryPreferences struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryPreferences creates an empty in-memory store.
func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{values: make(map[string]string)}
}

func (m *MemoryPreferences) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryPreferences) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// scopedPreferences prefixes every key, giving one user a private view of a
// shared store.
type scopedPreferences struct {
	prefix string
	inner  Preferences
}

// ScopedPreferences returns a view of inner whose keys are prefixed with
// scope and a colon. An empty scope returns inner unchanged.
func ScopedPreferences(inner Preferences, scope string) Preferences {
	if scope == "" {
		return inner
	}
	return scopedPreferences{prefix: scope + ":", inner: inner}
}

func (s scopedPreferences) Get(key string) (string, bool, error) {
	return s.inner.Get(s.prefix + key)
}

func (s scopedPreferences) Set(key, value string) error {
	return s.inner.Set(s.prefix+key, value)
}
