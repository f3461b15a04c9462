// Package storage defines the key-value adapter the record store
// persists through. Every provider exposes the same asynchronous
// contract regardless of whether the underlying medium is a local
// SQLite file or a remote Redis server, so the store never branches
// on the deployment target.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Adapter is the uniform get/set/remove contract over a key-value medium.
//
// Get returns ErrNotFound for absent keys; any other error means the
// medium itself failed. Set and Remove surface medium failures to the
// caller, which decides whether to propagate or degrade.
type Adapter interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error

	// Ping reports whether the medium is currently reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connection or file handle.
	Close() error
}
