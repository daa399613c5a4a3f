// Package store provides focused, single-concern data access stores
// for the person registry.
//
// Each store owns one table (people, logs) and embeds shared helpers
// (Pool, logger) via the Base struct. Every operation runs inside its own
// short-lived transaction: begun on entry, rolled back on any error path and
// committed before returning. Concurrency control is delegated entirely to
// the database; concurrent writers to the same row are last-writer-wins.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/registrohq/registro/internal/dbpool"
)

const defaultQueryTimeout = 30 * time.Second

// maxListLimit caps the page size of list queries.
const maxListLimit = 1000

// Base contains shared dependencies for all stores.
// Embed this in each store struct.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// beginTx starts a read-write transaction.
func (b *Base) beginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := b.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	return tx, nil
}

// beginReadTx starts a read-only transaction.
func (b *Base) beginReadTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := b.Pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("beginning read transaction: %w", err)
	}

	return tx, nil
}
