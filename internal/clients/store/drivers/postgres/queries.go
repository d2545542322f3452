package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/iftm/clients/internal/clients/domain"
	"github.com/iftm/clients/internal/clients/store/sqlq"
)

type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

type queries struct {
	db DBTX
}

func newQueries(db DBTX) *queries {
	return &queries{db: db}
}

type clientRow struct {
	ID        int64
	Name      string
	Cpf       string
	Income    float64
	BirthDate time.Time
	Children  int64
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClientRow(s rowScanner) (clientRow, error) {
	var r clientRow
	err := s.Scan(&r.ID, &r.Name, &r.Cpf, &r.Income, &r.BirthDate, &r.Children)
	return r, err
}

const getClientByID = `SELECT ` + sqlq.ClientColumns + ` FROM clients WHERE id = $1`

func (q *queries) GetClientByID(ctx context.Context, id int64) (clientRow, error) {
	return scanClientRow(q.db.QueryRowContext(ctx, getClientByID, id))
}

func (q *queries) SearchClients(ctx context.Context, query sqlq.Query) ([]clientRow, error) {
	rows, err := q.db.QueryContext(ctx, query.SQL, query.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []clientRow
	for rows.Next() {
		r, err := scanClientRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

func (q *queries) CountClients(ctx context.Context, query sqlq.Query) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, query.SQL, query.Args...).Scan(&n)
	return n, err
}

const createClient = `INSERT INTO clients (name, cpf, income, birth_date, children)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (q *queries) CreateClient(ctx context.Context, r clientRow) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, createClient, r.Name, r.Cpf, r.Income, r.BirthDate, r.Children).Scan(&id)
	return id, err
}

const updateClient = `UPDATE clients
SET name = $1, cpf = $2, income = $3, birth_date = $4, children = $5
WHERE id = $6`

func (q *queries) UpdateClient(ctx context.Context, r clientRow) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateClient, r.Name, r.Cpf, r.Income, r.BirthDate, r.Children, r.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteClient = `DELETE FROM clients WHERE id = $1`

func (q *queries) DeleteClient(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteClient, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func mapClient(r clientRow) domain.Client {
	return domain.Client{
		ID:        r.ID,
		Name:      r.Name,
		CPF:       r.Cpf,
		Income:    r.Income,
		BirthDate: r.BirthDate.UTC(),
		Children:  int(r.Children),
	}
}

func mapClientRow(c domain.Client) clientRow {
	return clientRow{
		ID:        c.ID,
		Name:      c.Name,
		Cpf:       c.CPF,
		Income:    c.Income,
		BirthDate: c.BirthDate.UTC(),
		Children:  int64(c.Children),
	}
}
