package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// KV is a durable local key-value store holding one JSON blob per string key.
// All of it lives in a single JSON file next to the other tool state.
//
// Reads are total: a missing file, a missing key or a malformed blob never
// produce an error, the caller gets its default value instead. Writes replace
// the whole value under a key.
type KV struct {
	path string

	mu sync.Mutex
}

// Open returns a store backed by the given file. The file does not have to
// exist yet; it is created on the first write.
func Open(path string) *KV {
	return &KV{path: path}
}

// Get decodes the blob stored under key into target. It reports false when
// the key is absent or the stored blob does not decode, leaving target
// untouched in both cases.
func (s *KV) Get(key string, target any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	blobs := s.load()
	raw, ok := blobs[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return false
	}
	return true
}

// Set stores value under key, replacing any previous blob.
func (s *KV) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value for key %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	blobs := s.load()
	blobs[key] = raw
	return s.save(blobs)
}

// Delete removes the blob stored under key. Deleting an absent key is a
// no-op.
func (s *KV) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blobs := s.load()
	if _, ok := blobs[key]; !ok {
		return nil
	}
	delete(blobs, key)
	return s.save(blobs)
}

// load reads the whole state file. Any failure degrades to an empty map:
// corrupt state must never crash a read path.
func (s *KV) load() map[string]json.RawMessage {
	blobs := make(map[string]json.RawMessage)

	file, err := os.Open(s.path)
	if err != nil {
		return blobs
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil || stat.Size() == 0 {
		return blobs
	}

	if err := json.NewDecoder(file).Decode(&blobs); err != nil {
		return make(map[string]json.RawMessage)
	}
	return blobs
}

func (s *KV) save(blobs map[string]json.RawMessage) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating state directory: %w", err)
		}
	}

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("opening state file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(blobs); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}
