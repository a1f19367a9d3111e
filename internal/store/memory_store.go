package store

import (
	"maps"
	"sync"

	"walletgg/internal/domain"
)

// MemoryKV keeps storage in process memory. It is used for ephemeral runs and
// in tests.
type MemoryKV struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryKV returns a MemoryKV pre-populated with seed.
func NewMemoryKV(seed map[string]string) *MemoryKV {
	entries := make(map[string]string, len(seed))
	maps.Copy(entries, seed)
	return &MemoryKV{entries: entries}
}

func (s *MemoryKV) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *MemoryKV) Put(entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	maps.Copy(s.entries, entries)
	return nil
}

func (s *MemoryKV) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.entries, k)
	}
	return nil
}

// Snapshot returns a copy of everything stored.
func (s *MemoryKV) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.entries)
}

var _ domain.KeyValueStore = (*MemoryKV)(nil)
