package postgres

import (
	"context"
	"database/sql"

	"github.com/iftm/clients/internal/clients/store"
)

type txStore struct {
	tx *sql.Tx
	q  *queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx: tx,
		q:  newQueries(tx),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Clients() store.Clients { return &clientsRepo{q: t.q} }

func (t *txStore) ApplyMigrations() error { return nil }
