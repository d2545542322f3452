// Package memory is a store driver keeping every client in process memory.
// Reads share a read lock; a transaction holds the write lock from Tx until
// Commit or Rollback and works on a private copy of the data.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/iftm/clients/internal/clients/domain"
	"github.com/iftm/clients/internal/clients/store"
)

var (
	ErrTxDone = errors.New("memory: transaction has already been committed or rolled back")
	ErrClosed = errors.New("memory: store is closed")
)

type locker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// noLock is used inside a transaction, which already owns the write lock.
type noLock struct{}

func (noLock) Lock()    {}
func (noLock) Unlock()  {}
func (noLock) RLock()   {}
func (noLock) RUnlock() {}

type dataset struct {
	clients map[int64]domain.Client
	byCPF   map[string]int64
	nextID  int64
	closed  bool
}

func newDataset() *dataset {
	return &dataset{
		clients: make(map[int64]domain.Client),
		byCPF:   make(map[string]int64),
		nextID:  1,
	}
}

func (d *dataset) clone() *dataset {
	c := &dataset{
		clients: make(map[int64]domain.Client, len(d.clients)),
		byCPF:   make(map[string]int64, len(d.byCPF)),
		nextID:  d.nextID,
	}
	for k, v := range d.clients {
		c.clients[k] = v
	}
	for k, v := range d.byCPF {
		c.byCPF[k] = v
	}
	return c
}

type Store struct {
	mu   sync.RWMutex
	data *dataset
}

func NewStore() *Store {
	return &Store{data: newDataset()}
}

func (s *Store) Clients() store.Clients {
	return &clientsRepo{mu: &s.mu, data: s.data}
}

// ApplyMigrations is a no-op, there is no schema.
func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	if s.data.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	return &txStore{parent: s, data: s.data.clone()}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Close makes every later call on the store and its repositories fail with
// ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.closed = true
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data.closed {
		return ErrClosed
	}
	return ctx.Err()
}

type txStore struct {
	parent *Store
	data   *dataset
	done   bool
}

func (t *txStore) Clients() store.Clients {
	return &clientsRepo{mu: noLock{}, data: t.data}
}

// Commit publishes the transaction's copy in place so repositories handed
// out by the parent keep pointing at live data.
func (t *txStore) Commit() error {
	if t.done {
		return ErrTxDone
	}
	t.done = true
	*t.parent.data = *t.data
	t.parent.mu.Unlock()
	return nil
}

func (t *txStore) Rollback() error {
	if t.done {
		return ErrTxDone
	}
	t.done = true
	t.parent.mu.Unlock()
	return nil
}

func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, ErrTxDone }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return ErrTxDone
}

func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }
