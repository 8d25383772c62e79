// Package metadata is the client's durable key/value storage, backed by a
// local sqlite database that survives restarts. The auth store keeps the
// bearer token here under common.TokenStorageKey.
package metadata

import "context"

type Repository interface {
	// Get returns the stored value, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
