// Package metadata is the client's key-value store, the equivalent of
// browser local storage. The session manager keeps the access token and the
// serialised user here.
package metadata

import (
	"context"
)

// Repository is a flat key-value store. Get returns (nil, nil) for an
// absent key; Delete of an absent key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Store is a Repository that can apply a group of writes atomically.
// Either every write made through the repo passed to fn is kept, or none is.
type Store interface {
	Repository
	RunInTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
}
