package metadata

import (
	"context"
)

// UpdateFunc receives the current value under a key (nil when absent) and
// returns the value to store. Returning a nil value deletes the key.
type UpdateFunc func(current []byte) ([]byte, error)

// Repository is a byte-oriented key/value store.
//
// Get returns (nil, nil) when the key does not exist. Delete is idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error

	// Update performs an atomic read-modify-write of a single key.
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
