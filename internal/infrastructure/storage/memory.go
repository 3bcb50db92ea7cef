package storage

import "sync"

// MemStore is an in-memory Store used by tests and ephemeral deployments
type MemStore struct {
	mu   sync.RWMutex
	docs map[string]map[string][]byte
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string]map[string][]byte)}
}

// Put writes a document, replacing any existing one
func (s *MemStore) Put(collection, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.docs[collection]
	if !ok {
		coll = make(map[string][]byte)
		s.docs[collection] = coll
	}

	// Copy so callers can't mutate stored state
	buf := make([]byte, len(data))
	copy(buf, data)
	coll[key] = buf
	return nil
}

// Get reads a document; returns ErrNotFound when absent
func (s *MemStore) Get(collection, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.docs[collection][key]
	if !ok {
		return nil, ErrNotFound
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}

// Delete removes a document; deleting an absent document is a no-op
func (s *MemStore) Delete(collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs[collection], key)
	return nil
}

// List returns the keys present in a collection
func (s *MemStore) List(collection string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.docs[collection]))
	for key := range s.docs[collection] {
		keys = append(keys, key)
	}
	return keys, nil
}
