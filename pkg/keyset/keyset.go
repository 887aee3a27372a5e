// Package keyset provides an in-memory lookup table keyed by canonical
// strings. Entries stored under one spelling of a canonically equivalent
// term are found under every other spelling, because keys pass through
// the nfc construction pipeline selected by the map's mode.
package keyset

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/hazyhaar/nfctext/pkg/nfc"
)

// Mode selects how raw lookup keys are canonicalized.
type Mode string

const (
	ModePlain        Mode = "plain"
	ModeCaseless     Mode = "caseless"
	ModePath         Mode = "path"
	ModeCaselessPath Mode = "caseless_path"
)

// Key returns the canonical key for s under this mode.
// Default is caseless.
func (m Mode) Key(s string) nfc.String {
	switch m {
	case ModePlain:
		return nfc.New(s)
	case ModePath:
		return nfc.NewPath(s)
	case ModeCaselessPath:
		return nfc.NewCaselessPath(s)
	default:
		return nfc.NewCaseless(s)
	}
}

// Map is a lookup table over canonical keys. Safe for concurrent use.
type Map[V any] struct {
	mu      sync.RWMutex
	mode    Mode
	entries map[nfc.String]V
}

// New creates an empty Map whose keys are canonicalized per mode.
func New[V any](mode Mode) *Map[V] {
	return &Map[V]{
		mode:    mode,
		entries: make(map[nfc.String]V),
	}
}

// Put stores v under the canonical form of key, replacing any previous
// value.
func (m *Map[V]) Put(key string, v V) {
	k := m.mode.Key(key)
	m.mu.Lock()
	m.entries[k] = v
	m.mu.Unlock()
}

// PutAll stores every item. Raw keys that collapse to the same canonical
// key overwrite each other; the collision count is logged, as collapsed
// keys usually mean the source data was not canonical to begin with.
func (m *Map[V]) PutAll(items map[string]V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var collisions int
	for key, v := range items {
		k := m.mode.Key(key)
		if _, exists := m.entries[k]; exists {
			collisions++
		}
		m.entries[k] = v
	}
	if collisions > 0 {
		slog.Warn("key collisions after canonicalization", "mode", m.mode, "collisions", collisions)
	}
}

// Get looks up the value stored under the canonical form of key.
func (m *Map[V]) Get(key string) (V, bool) {
	k := m.mode.Key(key)
	m.mu.RLock()
	v, ok := m.entries[k]
	m.mu.RUnlock()
	return v, ok
}

// Delete removes the entry for the canonical form of key.
func (m *Map[V]) Delete(key string) {
	k := m.mode.Key(key)
	m.mu.Lock()
	delete(m.entries, k)
	m.mu.Unlock()
}

// Len returns the number of canonical keys held.
func (m *Map[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Keys returns all canonical keys in their raw code point order, for
// deterministic iteration.
func (m *Map[V]) Keys() []nfc.String {
	m.mu.RLock()
	keys := make([]nfc.String, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	m.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
