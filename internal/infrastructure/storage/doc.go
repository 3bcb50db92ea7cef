// Package storage provides the persistence seam for workspaces, users,
// and preferences.
//
// Documents are opaque JSON blobs addressed by (collection, key). The
// filesystem implementation writes one file per document under the data
// directory; the memory implementation backs tests. Managers depend on the
// Store interface, never on a concrete backend.
package storage
