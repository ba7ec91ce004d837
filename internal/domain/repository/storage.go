// Package repository defines the interfaces for client-side state.
// These interfaces act as a contract between the use cases and the storage backends.
package repository

import "context"

// Storage is a flat key/value store holding serialized client state, the
// analogue of browser local or session storage.
type Storage interface {
	// Get returns the raw value for key. ok is false when nothing is stored.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set overwrites the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
