package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/iftm/clients/internal/clients/domain"
	"github.com/iftm/clients/pkg/clientsdk"
	"github.com/iftm/clients/pkg/httpx"
)

// ClientService is the behaviour the handlers need from the service layer.
type ClientService interface {
	FindAllPaged(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Client], error)
	FindByID(ctx context.Context, id int64) (domain.Client, error)
	FindByIncome(ctx context.Context, income float64, page domain.PageRequest) (domain.Page[domain.Client], error)
	FindByIncomeGreaterThan(ctx context.Context, income float64, page domain.PageRequest) (domain.Page[domain.Client], error)
	FindByCpfLike(ctx context.Context, cpf string, page domain.PageRequest) (domain.Page[domain.Client], error)
	Insert(ctx context.Context, c domain.Client) (domain.Client, error)
	Update(ctx context.Context, id int64, patch domain.ClientPatch) (domain.Client, error)
	Delete(ctx context.Context, id int64) error
}

// ClientsHandler serves the /clients resource.
type ClientsHandler struct {
	ClientService ClientService
}

// HandleList handles GET /clients
//
//	@Summary		List clients
//	@Description	Returns one page of all clients.
//	@Tags			Clients
//	@Produce		json
//	@Param			page			query		int		false	"0-based page index"	default(0)
//	@Param			linesPerPage	query		int		false	"Page size"				default(12)
//	@Param			direction		query		string	false	"ASC or DESC"			default(ASC)
//	@Param			orderBy			query		string	false	"Sort field"			default(name)
//	@Success		200				{object}	clientsdk.Page[clientsdk.ClientDTO]
//	@Failure		400				{object}	clientsdk.StandardError
//	@Router			/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.ClientService.FindAllPaged(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPageDTO(result))
}

// HandleGet handles GET /clients/id/{id}
//
//	@Summary		Get client
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path		int	true	"Client id"
//	@Success		200	{object}	clientsdk.ClientDTO
//	@Failure		400	{object}	clientsdk.StandardError
//	@Failure		404	{object}	clientsdk.StandardError
//	@Router			/clients/id/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.ClientService.FindByID(r.Context(), id)
	if err != nil {
		writeClientError(w, r, id, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toDTO(c))
}

// HandleFindByIncome handles GET /clients/income/
//
//	@Summary		Find clients by exact income
//	@Tags			Clients
//	@Produce		json
//	@Param			income			query		number	true	"Income to match"
//	@Param			page			query		int		false	"0-based page index"	default(0)
//	@Param			linesPerPage	query		int		false	"Page size"				default(12)
//	@Param			direction		query		string	false	"ASC or DESC"			default(ASC)
//	@Param			orderBy			query		string	false	"Sort field"			default(name)
//	@Success		200				{object}	clientsdk.Page[clientsdk.ClientDTO]
//	@Failure		400				{object}	clientsdk.StandardError
//	@Router			/clients/income/ [get].
func (h *ClientsHandler) HandleFindByIncome(w http.ResponseWriter, r *http.Request) {
	income, page, err := parseIncomeSearch(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.ClientService.FindByIncome(r.Context(), income, page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPageDTO(result))
}

// HandleFindByIncomeGreaterThan handles GET /clients/incomeGreaterThan/
//
//	@Summary		Find clients above an income
//	@Description	Returns the clients whose income is strictly greater than the given value.
//	@Tags			Clients
//	@Produce		json
//	@Param			income			query		number	true	"Exclusive lower bound"
//	@Param			page			query		int		false	"0-based page index"	default(0)
//	@Param			linesPerPage	query		int		false	"Page size"				default(12)
//	@Param			direction		query		string	false	"ASC or DESC"			default(ASC)
//	@Param			orderBy			query		string	false	"Sort field"			default(name)
//	@Success		200				{object}	clientsdk.Page[clientsdk.ClientDTO]
//	@Failure		400				{object}	clientsdk.StandardError
//	@Router			/clients/incomeGreaterThan/ [get].
func (h *ClientsHandler) HandleFindByIncomeGreaterThan(w http.ResponseWriter, r *http.Request) {
	income, page, err := parseIncomeSearch(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.ClientService.FindByIncomeGreaterThan(r.Context(), income, page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPageDTO(result))
}

// HandleFindByCpfLike handles GET /clients/cpfLike/
//
//	@Summary		Find clients by CPF fragment
//	@Description	Returns the clients whose CPF contains the fragment. % and _ are matched literally.
//	@Tags			Clients
//	@Produce		json
//	@Param			cpf				query		string	false	"CPF fragment"
//	@Param			page			query		int		false	"0-based page index"	default(0)
//	@Param			linesPerPage	query		int		false	"Page size"				default(12)
//	@Param			direction		query		string	false	"ASC or DESC"			default(ASC)
//	@Param			orderBy			query		string	false	"Sort field"			default(name)
//	@Success		200				{object}	clientsdk.Page[clientsdk.ClientDTO]
//	@Failure		400				{object}	clientsdk.StandardError
//	@Router			/clients/cpfLike/ [get].
func (h *ClientsHandler) HandleFindByCpfLike(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.ClientService.FindByCpfLike(r.Context(), r.URL.Query().Get("cpf"), page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPageDTO(result))
}

// HandleCreate handles POST /clients
//
//	@Summary		Create client
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clientsdk.ClientDTO	true	"Client, the id is ignored"
//	@Success		201		{object}	clientsdk.ClientDTO
//	@Header			201		{string}	Location	"/clients/id/{id}"
//	@Failure		400		{object}	clientsdk.StandardError
//	@Failure		409		{object}	clientsdk.StandardError
//	@Failure		422		{object}	clientsdk.StandardError
//	@Router			/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req clientsdk.ClientDTO
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.ClientService.Insert(r.Context(), fromDTO(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", clientPath(c.ID))
	httpx.WriteJSON(w, http.StatusCreated, toDTO(c))
}

// HandleUpdate handles PUT /clients/{id}
//
//	@Summary		Update client
//	@Description	Applies the fields present in the body and leaves the others unchanged. The id cannot change.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Client id"
//	@Param			request	body		clientsdk.UpdateClientRequest	true	"Fields to change"
//	@Success		200		{object}	clientsdk.ClientDTO
//	@Failure		400		{object}	clientsdk.StandardError
//	@Failure		404		{object}	clientsdk.StandardError
//	@Failure		409		{object}	clientsdk.StandardError
//	@Failure		422		{object}	clientsdk.StandardError
//	@Router			/clients/{id} [put].
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req clientsdk.UpdateClientRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.ClientService.Update(r.Context(), id, toPatch(req))
	if err != nil {
		writeClientError(w, r, id, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toDTO(c))
}

// HandleDelete handles DELETE /clients/{id}
//
//	@Summary	Delete client
//	@Tags		Clients
//	@Param		id	path	int	true	"Client id"
//	@Success	204
//	@Failure	400	{object}	clientsdk.StandardError
//	@Failure	404	{object}	clientsdk.StandardError
//	@Router		/clients/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.ClientService.Delete(r.Context(), id); err != nil {
		writeClientError(w, r, id, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// clientPath is the canonical location of a client, used for Location
// headers and for the path of not-found errors.
func clientPath(id int64) string {
	return "/clients/id/" + strconv.FormatInt(id, 10)
}
