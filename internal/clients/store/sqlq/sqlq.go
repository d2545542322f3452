// Package sqlq renders the dynamic client search statements shared by the SQL
// store drivers. Only the bind placeholder style and the substring predicate
// differ between dialects.
package sqlq

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iftm/clients/internal/clients/domain"
)

// ClientColumns is the column list every client SELECT returns, in scan order.
const ClientColumns = "id, name, cpf, income, birth_date, children"

type Dialect struct {
	// Placeholder renders the n-th (1-based) bind parameter.
	Placeholder func(n int) string
	// Contains renders a literal substring test of column against param.
	Contains func(column, param string) string
}

var SQLite = Dialect{
	Placeholder: func(int) string { return "?" },
	Contains: func(column, param string) string {
		return "instr(" + column + ", " + param + ") > 0"
	},
}

var Postgres = Dialect{
	Placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
	Contains: func(column, param string) string {
		return "strpos(" + column + ", " + param + ") > 0"
	},
}

var sortColumns = map[domain.SortField]string{
	domain.SortByID:        "id",
	domain.SortByName:      "name",
	domain.SortByCPF:       "cpf",
	domain.SortByIncome:    "income",
	domain.SortByBirthDate: "birth_date",
	domain.SortByChildren:  "children",
}

type Query struct {
	SQL  string
	Args []any
}

type builder struct {
	d     Dialect
	conds []string
	args  []any
}

func (b *builder) bind(v any) string {
	b.args = append(b.args, v)
	return b.d.Placeholder(len(b.args))
}

func (b *builder) where(f domain.ClientFilter) string {
	if f.IncomeEquals != nil {
		b.conds = append(b.conds, "income = "+b.bind(*f.IncomeEquals))
	}
	if f.IncomeGreaterThan != nil {
		b.conds = append(b.conds, "income > "+b.bind(*f.IncomeGreaterThan))
	}
	if f.CPFContains != "" {
		b.conds = append(b.conds, b.d.Contains("cpf", b.bind(f.CPFContains)))
	}
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// CountClients renders a COUNT(*) over the clients matching f.
func (d Dialect) CountClients(f domain.ClientFilter) Query {
	b := &builder{d: d}
	sql := "SELECT COUNT(*) FROM clients" + b.where(f)
	return Query{SQL: sql, Args: b.args}
}

// SelectClients renders the page of clients matching f. The sort column is
// looked up from a fixed allow-list, never interpolated from input.
func (d Dialect) SelectClients(f domain.ClientFilter, page domain.PageRequest) (Query, error) {
	column, ok := sortColumns[page.Sort.Field]
	if !ok {
		return Query{}, fmt.Errorf("%w: %q", domain.ErrInvalidSortField, page.Sort.Field)
	}
	direction := "ASC"
	if page.Sort.Direction == domain.Desc {
		direction = "DESC"
	}

	b := &builder{d: d}
	var sb strings.Builder
	sb.WriteString("SELECT " + ClientColumns + " FROM clients")
	sb.WriteString(b.where(f))
	sb.WriteString(" ORDER BY " + column + " " + direction)
	if column != "id" {
		sb.WriteString(", id ASC")
	}
	sb.WriteString(" LIMIT " + b.bind(page.Size))
	sb.WriteString(" OFFSET " + b.bind(page.Offset()))

	return Query{SQL: sb.String(), Args: b.args}, nil
}
