// Package blob defines the blob store collaborator: opaque, globally unique
// keys mapped to raw bytes. The engine only ever needs put/get/delete; byte
// storage mechanics live behind this interface.
package blob

import "context"

// Store is the physical byte storage collaborator.
type Store interface {
	// Put writes data under key. Keys are opaque and globally unique;
	// writing an existing key overwrites it.
	Put(ctx context.Context, key string, data []byte) error

	// Get returns the bytes stored under key.
	// Returns domain.ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the blob under key.
	// Returns domain.ErrNotFound if the key does not exist.
	Delete(ctx context.Context, key string) error
}
