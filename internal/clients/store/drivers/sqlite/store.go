package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iftm/clients/internal/clients/store"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *queries
	dsn string
}

// NewStore opens the sqlite database at dsn. An in-memory dsn is pinned to a
// single connection, every new connection would otherwise see an empty
// database.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   newQueries(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // no-op after a successful commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Clients() store.Clients { return &clientsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func mapConstraint(err error) error {
	var serr *sqlite.Error
	if errors.As(err, &serr) && serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return store.ErrAlreadyExists
	}
	return err
}
