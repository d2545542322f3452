package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/iftm/clients/internal/clients/domain"
	"github.com/iftm/clients/internal/clients/store/sqlq"
)

// timeLayout is fixed width so text ordering matches chronological ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DBTX is satisfied by both *sql.DB and *sql.Tx.
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
	BirthDate string
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

const getClientByID = `SELECT ` + sqlq.ClientColumns + ` FROM clients WHERE id = ?`

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
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (q *queries) CountClients(ctx context.Context, query sqlq.Query) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, query.SQL, query.Args...).Scan(&n)
	return n, err
}

const createClient = `INSERT INTO clients (name, cpf, income, birth_date, children) VALUES (?, ?, ?, ?, ?)`

func (q *queries) CreateClient(ctx context.Context, r clientRow) (int64, error) {
	res, err := q.db.ExecContext(ctx, createClient, r.Name, r.Cpf, r.Income, r.BirthDate, r.Children)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const updateClient = `UPDATE clients SET name = ?, cpf = ?, income = ?, birth_date = ?, children = ? WHERE id = ?`

func (q *queries) UpdateClient(ctx context.Context, r clientRow) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateClient, r.Name, r.Cpf, r.Income, r.BirthDate, r.Children, r.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteClient = `DELETE FROM clients WHERE id = ?`

func (q *queries) DeleteClient(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteClient, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func mapClient(r clientRow) (domain.Client, error) {
	birth, err := time.Parse(timeLayout, r.BirthDate)
	if err != nil {
		return domain.Client{}, err
	}
	return domain.Client{
		ID:        r.ID,
		Name:      r.Name,
		CPF:       r.Cpf,
		Income:    r.Income,
		BirthDate: birth.UTC(),
		Children:  int(r.Children),
	}, nil
}

func mapClientRow(c domain.Client) clientRow {
	return clientRow{
		ID:        c.ID,
		Name:      c.Name,
		Cpf:       c.CPF,
		Income:    c.Income,
		BirthDate: c.BirthDate.UTC().Format(timeLayout),
		Children:  int64(c.Children),
	}
}
