package http

import (
	"net/http"

	"github.com/iftm/clients/internal/clients/domain"
	"github.com/iftm/clients/pkg/httpx"
)

// parsePageRequest reads page, linesPerPage, direction and orderBy, applying
// the API defaults for absent parameters.
func parsePageRequest(r *http.Request) (domain.PageRequest, error) {
	def := domain.DefaultPageRequest()

	page, err := httpx.QueryInt(r, "page", def.Page)
	if err != nil {
		return domain.PageRequest{}, err
	}
	size, err := httpx.QueryInt(r, "linesPerPage", def.Size)
	if err != nil {
		return domain.PageRequest{}, err
	}
	dir, err := domain.ParseDirection(httpx.QueryString(r, "direction", string(def.Sort.Direction)))
	if err != nil {
		return domain.PageRequest{}, err
	}
	field, err := domain.ParseSortField(httpx.QueryString(r, "orderBy", string(def.Sort.Field)))
	if err != nil {
		return domain.PageRequest{}, err
	}

	req := domain.PageRequest{Page: page, Size: size, Sort: domain.Sort{Field: field, Direction: dir}}
	if err := req.Validate(); err != nil {
		return domain.PageRequest{}, err
	}
	return req, nil
}

// parseIncomeSearch reads the required income bound and the paging
// parameters.
func parseIncomeSearch(r *http.Request) (float64, domain.PageRequest, error) {
	income, err := httpx.RequiredQueryFloat(r, "income")
	if err != nil {
		return 0, domain.PageRequest{}, err
	}
	page, err := parsePageRequest(r)
	if err != nil {
		return 0, domain.PageRequest{}, err
	}
	return income, page, nil
}
