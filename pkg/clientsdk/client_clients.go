package clientsdk

import (
	"context"
	"net/http"
	"strconv"
)

func formatIncome(income float64) string {
	return strconv.FormatFloat(income, 'f', -1, 64)
}

func (c *SDKClient) getPage(ctx context.Context, path string, params PageParams, extra map[string]string) (*Page[ClientDTO], error) {
	query := params.Values()
	for k, v := range extra {
		query.Set(k, v)
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	var page Page[ClientDTO]
	if err := decodeJSON(resp, &page, http.StatusOK); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListClients returns one page of all clients.
func (c *SDKClient) ListClients(ctx context.Context, params PageParams) (*Page[ClientDTO], error) {
	return c.getPage(ctx, "/clients", params, nil)
}

// FindByIncome returns the clients whose income equals income.
func (c *SDKClient) FindByIncome(ctx context.Context, income float64, params PageParams) (*Page[ClientDTO], error) {
	return c.getPage(ctx, "/clients/income/", params, map[string]string{"income": formatIncome(income)})
}

// FindByIncomeGreaterThan returns the clients earning strictly more than income.
func (c *SDKClient) FindByIncomeGreaterThan(ctx context.Context, income float64, params PageParams) (*Page[ClientDTO], error) {
	return c.getPage(ctx, "/clients/incomeGreaterThan/", params, map[string]string{"income": formatIncome(income)})
}

// FindByCpfLike returns the clients whose CPF contains cpf.
func (c *SDKClient) FindByCpfLike(ctx context.Context, cpf string, params PageParams) (*Page[ClientDTO], error) {
	return c.getPage(ctx, "/clients/cpfLike/", params, map[string]string{"cpf": cpf})
}

// GetClient fetches a single client.
func (c *SDKClient) GetClient(ctx context.Context, id int64) (*ClientDTO, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/clients/id/"+strconv.FormatInt(id, 10), nil, nil)
	if err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := decodeJSON(resp, &dto, http.StatusOK); err != nil {
		return nil, err
	}
	return &dto, nil
}

// CreateClient stores a new client and returns it with its assigned id.
func (c *SDKClient) CreateClient(ctx context.Context, client ClientDTO) (*ClientDTO, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/clients", nil, client)
	if err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := decodeJSON(resp, &dto, http.StatusCreated); err != nil {
		return nil, err
	}
	return &dto, nil
}

// UpdateClient applies the non-nil fields of req to the client.
func (c *SDKClient) UpdateClient(ctx context.Context, id int64, req UpdateClientRequest) (*ClientDTO, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/clients/"+strconv.FormatInt(id, 10), nil, req)
	if err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := decodeJSON(resp, &dto, http.StatusOK); err != nil {
		return nil, err
	}
	return &dto, nil
}

// DeleteClient removes the client.
func (c *SDKClient) DeleteClient(ctx context.Context, id int64) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/clients/"+strconv.FormatInt(id, 10), nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
