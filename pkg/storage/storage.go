// Package storage provides the key-value persistence port used by the
// storefront stores. Values are JSON snapshots; a missing key is reported
// with ErrNotFound so callers can fall back to an empty initial state.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: key not found")

// Store is the narrow persistence interface injected into each store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
