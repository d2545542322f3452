package service

import (
	"context"
	"errors"

	"github.com/iftm/clients/internal/clients/domain"
	"github.com/iftm/clients/internal/clients/store"
	"github.com/iftm/clients/pkg/slogx"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrCPFTaken       = errors.New("cpf is already registered")
	ErrInvalidClient  = errors.New("invalid client")
)

type ClientService struct {
	Store store.Store
}

func NewClientService(st store.Store) *ClientService {
	return &ClientService{Store: st}
}

// FindAllPaged returns one page of every client in the requested order.
func (s *ClientService) FindAllPaged(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Client], error) {
	return s.search(ctx, domain.ClientFilter{}, page)
}

// FindByIncome returns the clients whose income is exactly income.
func (s *ClientService) FindByIncome(
	ctx context.Context,
	income float64,
	page domain.PageRequest,
) (domain.Page[domain.Client], error) {
	return s.search(ctx, domain.ClientFilter{IncomeEquals: &income}, page)
}

// FindByIncomeGreaterThan returns the clients earning strictly more than income.
func (s *ClientService) FindByIncomeGreaterThan(
	ctx context.Context,
	income float64,
	page domain.PageRequest,
) (domain.Page[domain.Client], error) {
	return s.search(ctx, domain.ClientFilter{IncomeGreaterThan: &income}, page)
}

// FindByCpfLike returns the clients whose CPF contains cpf. The fragment is
// matched literally.
func (s *ClientService) FindByCpfLike(
	ctx context.Context,
	cpf string,
	page domain.PageRequest,
) (domain.Page[domain.Client], error) {
	return s.search(ctx, domain.ClientFilter{CPFContains: cpf}, page)
}

func (s *ClientService) search(
	ctx context.Context,
	filter domain.ClientFilter,
	page domain.PageRequest,
) (domain.Page[domain.Client], error) {
	l := slogx.FromContext(ctx)

	if err := page.Validate(); err != nil {
		return domain.Page[domain.Client]{}, err
	}

	total, err := s.Store.Clients().CountClients(ctx, filter)
	if err != nil {
		l.Error("failed to count clients", "error", err)
		return domain.Page[domain.Client]{}, err
	}

	var content []domain.Client
	if !page.PastEnd(total) {
		content, err = s.Store.Clients().SearchClients(ctx, filter, page)
		if err != nil {
			l.Error("failed to search clients", "error", err)
			return domain.Page[domain.Client]{}, err
		}
	}

	return domain.NewPage(content, page, total), nil
}

// FindByID returns ErrClientNotFound when no client has the given id.
func (s *ClientService) FindByID(ctx context.Context, id int64) (domain.Client, error) {
	c, err := s.Store.Clients().GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		slogx.FromContext(ctx).Error("failed to load client", "error", err, "client_id", id)
		return domain.Client{}, err
	}
	return c, nil
}

// Insert validates c and stores it under a new id. Any id set on c is ignored.
func (s *ClientService) Insert(ctx context.Context, c domain.Client) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	if err := validateClient(c); err != nil {
		return domain.Client{}, err
	}

	c.ID = 0
	c.BirthDate = c.BirthDate.UTC()

	id, err := s.Store.Clients().CreateClient(ctx, c)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Client{}, ErrCPFTaken
		}
		l.Error("failed to create client", "error", err)
		return domain.Client{}, err
	}
	c.ID = id

	l.Info("client created", "client_id", id)
	return c, nil
}

// Update applies patch to the client with the given id and returns the
// result. The read and the write share one transaction.
func (s *ClientService) Update(ctx context.Context, id int64, patch domain.ClientPatch) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	if err := validatePatch(patch); err != nil {
		return domain.Client{}, err
	}

	var updated domain.Client
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Clients().GetClientByID(ctx, id)
		if err != nil {
			return err
		}
		updated = patch.Apply(current)
		if patch.IsEmpty() {
			return nil
		}
		return tx.Clients().UpdateClient(ctx, updated)
	})
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		return domain.Client{}, ErrClientNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.Client{}, ErrCPFTaken
	default:
		l.Error("failed to update client", "error", err, "client_id", id)
		return domain.Client{}, err
	}

	l.Info("client updated", "client_id", id)
	return updated, nil
}

// Delete removes the client with the given id.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	l := slogx.FromContext(ctx)

	err := s.Store.Clients().DeleteClient(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		l.Error("failed to delete client", "error", err, "client_id", id)
		return err
	}

	l.Info("client deleted", "client_id", id)
	return nil
}
