package storage

import "errors"

// ErrNotFound is returned when a document does not exist
var ErrNotFound = errors.New("document not found")

// Store persists JSON documents addressed by collection and key
type Store interface {
	// Put writes a document, replacing any existing one
	Put(collection, key string, data []byte) error

	// Get reads a document; returns ErrNotFound when absent
	Get(collection, key string) ([]byte, error)

	// Delete removes a document; deleting an absent document is a no-op
	Delete(collection, key string) error

	// List returns the keys present in a collection
	List(collection string) ([]string, error)
}
