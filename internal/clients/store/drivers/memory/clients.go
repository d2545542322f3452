package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/iftm/clients/internal/clients/domain"
	"github.com/iftm/clients/internal/clients/store"
)

type clientsRepo struct {
	mu   locker
	data *dataset
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id int64) (domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.data.closed {
		return domain.Client{}, ErrClosed
	}

	c, ok := r.data.clients[id]
	if !ok {
		return domain.Client{}, store.ErrNotFound
	}
	return c, nil
}

func (r *clientsRepo) SearchClients(
	ctx context.Context,
	filter domain.ClientFilter,
	page domain.PageRequest,
) ([]domain.Client, error) {
	less, err := comparator(page.Sort)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	if r.data.closed {
		r.mu.RUnlock()
		return nil, ErrClosed
	}
	matched := r.matching(filter)
	r.mu.RUnlock()

	slices.SortFunc(matched, less)

	start := page.Offset()
	if start >= len(matched) {
		return []domain.Client{}, nil
	}
	end := min(start+page.Size, len(matched))
	return matched[start:end], nil
}

func (r *clientsRepo) CountClients(ctx context.Context, filter domain.ClientFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.data.closed {
		return 0, ErrClosed
	}
	return int64(len(r.matching(filter))), nil
}

// matching must be called with the read lock held.
func (r *clientsRepo) matching(filter domain.ClientFilter) []domain.Client {
	out := make([]domain.Client, 0, len(r.data.clients))
	for _, c := range r.data.clients {
		if filter.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data.closed {
		return 0, ErrClosed
	}

	if _, taken := r.data.byCPF[c.CPF]; taken {
		return 0, store.ErrAlreadyExists
	}

	c.ID = r.data.nextID
	r.data.nextID++
	c.BirthDate = c.BirthDate.UTC()
	r.data.clients[c.ID] = c
	r.data.byCPF[c.CPF] = c.ID
	return c.ID, nil
}

func (r *clientsRepo) UpdateClient(ctx context.Context, c domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data.closed {
		return ErrClosed
	}

	current, ok := r.data.clients[c.ID]
	if !ok {
		return store.ErrNotFound
	}
	if owner, taken := r.data.byCPF[c.CPF]; taken && owner != c.ID {
		return store.ErrAlreadyExists
	}

	delete(r.data.byCPF, current.CPF)
	c.BirthDate = c.BirthDate.UTC()
	r.data.clients[c.ID] = c
	r.data.byCPF[c.CPF] = c.ID
	return nil
}

func (r *clientsRepo) DeleteClient(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data.closed {
		return ErrClosed
	}

	current, ok := r.data.clients[id]
	if !ok {
		return store.ErrNotFound
	}
	delete(r.data.clients, id)
	delete(r.data.byCPF, current.CPF)
	return nil
}

func (r *clientsRepo) IsEmpty(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.data.closed {
		return false, ErrClosed
	}
	return len(r.data.clients) == 0, nil
}

// comparator orders by the sort field, then by id ascending, matching the
// ORDER BY the SQL drivers emit.
func comparator(s domain.Sort) (func(a, b domain.Client) int, error) {
	var byField func(a, b domain.Client) int
	switch s.Field {
	case domain.SortByID:
		byField = func(a, b domain.Client) int { return cmp.Compare(a.ID, b.ID) }
	case domain.SortByName:
		byField = func(a, b domain.Client) int { return strings.Compare(a.Name, b.Name) }
	case domain.SortByCPF:
		byField = func(a, b domain.Client) int { return strings.Compare(a.CPF, b.CPF) }
	case domain.SortByIncome:
		byField = func(a, b domain.Client) int { return cmp.Compare(a.Income, b.Income) }
	case domain.SortByBirthDate:
		byField = func(a, b domain.Client) int { return a.BirthDate.Compare(b.BirthDate) }
	case domain.SortByChildren:
		byField = func(a, b domain.Client) int { return cmp.Compare(a.Children, b.Children) }
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSortField, s.Field)
	}

	desc := s.Direction == domain.Desc
	return func(a, b domain.Client) int {
		c := byField(a, b)
		if desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	}, nil
}
