package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists entries as a single JSON file, the CLI's equivalent of
// browser local storage. The file is read once at open; every mutation
// rewrites it. A file that cannot be parsed reads as an empty store.
type FileStore struct {
	path string

	mu      sync.Mutex
	entries map[string]json.RawMessage
	log     *slog.Logger
}

var _ Store = (*FileStore)(nil)

func OpenFileStore(path string) *FileStore {
	s := &FileStore{
		path:    path,
		entries: make(map[string]json.RawMessage),
		log:     slog.Default(),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("state file unreadable, starting empty", "path", path, "error", err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		s.log.Warn("state file corrupt, starting empty", "path", path, "error", err)
		s.entries = make(map[string]json.RawMessage)
	}
	return s
}

func (s *FileStore) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error("store set failed", "key", key, "error", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = data
	s.flush()
}

func (s *FileStore) Get(key string, out any) bool {
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

func (s *FileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	s.flush()
}

func (s *FileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]json.RawMessage)
	s.flush()
}

// flush writes the current entries to disk. Callers hold the lock. Write
// errors are logged, never surfaced: the in-memory state stays usable.
func (s *FileStore) flush() {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		s.log.Error("state encode failed", "path", s.path, "error", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.log.Error("state dir create failed", "path", s.path, "error", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.log.Error("state write failed", "path", s.path, "error", err)
	}
}
