package sqlite

import (
	"context"

	"github.com/iftm/clients/internal/clients/domain"
	"github.com/iftm/clients/internal/clients/store"
	"github.com/iftm/clients/internal/clients/store/sqlq"
)

type clientsRepo struct {
	q *queries
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id int64) (domain.Client, error) {
	row, err := r.q.GetClientByID(ctx, id)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return mapClient(row)
}

func (r *clientsRepo) SearchClients(
	ctx context.Context,
	filter domain.ClientFilter,
	page domain.PageRequest,
) ([]domain.Client, error) {
	query, err := sqlq.SQLite.SelectClients(filter, page)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.SearchClients(ctx, query)
	if err != nil {
		return nil, err
	}

	clients := make([]domain.Client, len(rows))
	for i, row := range rows {
		if clients[i], err = mapClient(row); err != nil {
			return nil, err
		}
	}
	return clients, nil
}

func (r *clientsRepo) CountClients(ctx context.Context, filter domain.ClientFilter) (int64, error) {
	return r.q.CountClients(ctx, sqlq.SQLite.CountClients(filter))
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) (int64, error) {
	id, err := r.q.CreateClient(ctx, mapClientRow(c))
	if err != nil {
		return 0, mapConstraint(err)
	}
	return id, nil
}

func (r *clientsRepo) UpdateClient(ctx context.Context, c domain.Client) error {
	n, err := r.q.UpdateClient(ctx, mapClientRow(c))
	if err != nil {
		return mapConstraint(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *clientsRepo) DeleteClient(ctx context.Context, id int64) error {
	n, err := r.q.DeleteClient(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *clientsRepo) IsEmpty(ctx context.Context) (bool, error) {
	count, err := r.CountClients(ctx, domain.ClientFilter{})
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
