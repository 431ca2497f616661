// Package credentials implements the persistent credential store: a small
// key-value repository over the local SQLite database, plus a typed wrapper
// holding the session token and the derived user record. The store survives
// process restarts; the session manager is its only writer.
package credentials

import (
	"context"

	"github.com/dmitrijs2005/courtside/internal/dbx"
)

// Repository is a context-aware key-value store. Get returns (nil, nil) for
// a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error

	// WithTx returns a repository view bound to the given transactional
	// handle, for multi-key atomic writes.
	WithTx(tx dbx.DBTX) Repository
}
