package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FSStore persists documents as JSON files under a data directory,
// one subdirectory per collection.
type FSStore struct {
	root string
	mu   sync.RWMutex
}

// NewFSStore creates a filesystem store rooted at dir
func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FSStore{root: dir}, nil
}

// Put writes a document, replacing any existing one
func (s *FSStore) Put(collection, key string, data []byte) error {
	path, err := s.docPath(collection, key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create collection directory: %w", err)
	}

	// Write-then-rename so readers never observe a partial document
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to commit document: %w", err)
	}
	return nil
}

// Get reads a document; returns ErrNotFound when absent
func (s *FSStore) Get(collection, key string) ([]byte, error) {
	path, err := s.docPath(collection, key)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

// Delete removes a document; deleting an absent document is a no-op
func (s *FSStore) Delete(collection, key string) error {
	path, err := s.docPath(collection, key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// List returns the keys present in a collection
func (s *FSStore) List(collection string) ([]string, error) {
	if err := validateSegment(collection); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(filepath.Join(s.root, collection))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list collection: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	return keys, nil
}

func (s *FSStore) docPath(collection, key string) (string, error) {
	if err := validateSegment(collection); err != nil {
		return "", err
	}
	if err := validateSegment(key); err != nil {
		return "", err
	}
	return filepath.Join(s.root, collection, key+".json"), nil
}

// validateSegment rejects path components that could escape the data root
func validateSegment(seg string) error {
	if seg == "" {
		return fmt.Errorf("empty path segment")
	}
	if strings.ContainsAny(seg, "/\\") || strings.Contains(seg, "..") {
		return fmt.Errorf("invalid path segment %q", seg)
	}
	return nil
}
