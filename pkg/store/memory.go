package store

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// MemStore keeps entries in process memory. Used by tests and as a fallback
// when no state file is configured.
type MemStore struct {
	mu      sync.Mutex
	entries map[string]json.RawMessage
	log     *slog.Logger
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		entries: make(map[string]json.RawMessage),
		log:     slog.Default(),
	}
}

func (s *MemStore) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error("store set failed", "key", key, "error", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = data
}

func (s *MemStore) Get(key string, out any) bool {
	s.mu.Lock()
	raw, ok := s.entries[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Error("store get failed", "key", key, "error", err)
		return false
	}
	return true
}

func (s *MemStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

func (s *MemStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]json.RawMessage)
}
