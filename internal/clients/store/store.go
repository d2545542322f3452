package store

import (
	"context"
	"errors"

	"github.com/iftm/clients/internal/clients/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres, memory) implement this. Repositories hang off the store so a
// transaction can hand out the same repositories bound to itself.
type Store interface {
	Clients() Clients

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the backing storage is reachable.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Clients interface {
	// GetClientByID returns ErrNotFound when no client has the id.
	GetClientByID(ctx context.Context, id int64) (domain.Client, error)

	// SearchClients returns the requested page of clients matching filter,
	// ordered by the page sort and then by id ascending.
	SearchClients(ctx context.Context, filter domain.ClientFilter, page domain.PageRequest) ([]domain.Client, error)

	// CountClients counts every client matching filter.
	CountClients(ctx context.Context, filter domain.ClientFilter) (int64, error)

	// CreateClient inserts c ignoring c.ID and returns the assigned id.
	// A duplicate CPF yields ErrAlreadyExists.
	CreateClient(ctx context.Context, c domain.Client) (int64, error)

	// UpdateClient overwrites every mutable column of the client with c.ID.
	UpdateClient(ctx context.Context, c domain.Client) error

	DeleteClient(ctx context.Context, id int64) error

	IsEmpty(ctx context.Context) (bool, error)
}
