// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// BlobStore is the local persistence medium behind the collection stores.
// Each top-level collection lives under one stable key as a single
// serialized blob; writes fully overwrite the prior value.
type BlobStore interface {
	// Get returns the blob stored under key. The boolean reports whether a
	// value exists; a missing key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put overwrites the blob stored under key (last-writer-wins).
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the blob stored under key. Deleting a missing key is
	// a no-op.
	Delete(ctx context.Context, key string) error
}
