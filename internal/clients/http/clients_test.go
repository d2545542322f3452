package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/iftm/clients/internal/clients/domain"
	"github.com/iftm/clients/internal/clients/service"
	"github.com/iftm/clients/internal/clients/store/drivers/memory"
	"github.com/iftm/clients/pkg/clientsdk"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockClientService struct {
	mock.Mock
}

func (m *mockClientService) FindAllPaged(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Client], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(domain.Page[domain.Client]), args.Error(1)
}

func (m *mockClientService) FindByID(ctx context.Context, id int64) (domain.Client, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Client), args.Error(1)
}

func (m *mockClientService) FindByIncome(ctx context.Context, income float64, page domain.PageRequest) (domain.Page[domain.Client], error) {
	args := m.Called(ctx, income, page)
	return args.Get(0).(domain.Page[domain.Client]), args.Error(1)
}

func (m *mockClientService) FindByIncomeGreaterThan(ctx context.Context, income float64, page domain.PageRequest) (domain.Page[domain.Client], error) {
	args := m.Called(ctx, income, page)
	return args.Get(0).(domain.Page[domain.Client]), args.Error(1)
}

func (m *mockClientService) FindByCpfLike(ctx context.Context, cpf string, page domain.PageRequest) (domain.Page[domain.Client], error) {
	args := m.Called(ctx, cpf, page)
	return args.Get(0).(domain.Page[domain.Client]), args.Error(1)
}

func (m *mockClientService) Insert(ctx context.Context, c domain.Client) (domain.Client, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Client), args.Error(1)
}

func (m *mockClientService) Update(ctx context.Context, id int64, patch domain.ClientPatch) (domain.Client, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Client), args.Error(1)
}

func (m *mockClientService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newMockRouter(t *testing.T) (*Router, *mockClientService) {
	t.Helper()

	svc := &mockClientService{}
	t.Cleanup(func() { svc.AssertExpectations(t) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRouter("test", memory.NewStore(), logger)
	r.ClientService = svc
	r.ApplyRoutes()
	return r, svc
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) clientsdk.StandardError {
	t.Helper()
	var body clientsdk.StandardError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

var jose = domain.Client{
	ID:        7,
	Name:      "Jose Saramago",
	CPF:       "10239254871",
	Income:    5000,
	BirthDate: time.Date(1996, 12, 23, 7, 0, 0, 0, time.UTC),
}

func TestHandleListDefaults(t *testing.T) {
	r, svc := newMockRouter(t)

	page := domain.NewPage([]domain.Client{jose}, domain.DefaultPageRequest(), 13)
	svc.On("FindAllPaged", mock.Anything, domain.DefaultPageRequest()).Return(page, nil).Twice()

	for _, target := range []string{"/clients", "/clients/"} {
		rec := do(r, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rec.Code, target)

		var body clientsdk.Page[clientsdk.ClientDTO]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, int64(13), body.TotalElements)
		require.Equal(t, 2, body.TotalPages)
		require.Equal(t, 12, body.Size)
		require.Equal(t, 1, body.NumberOfElements)
		require.True(t, body.First)
		require.False(t, body.Last)
		require.False(t, body.Empty)
		require.Equal(t, "Jose Saramago", body.Content[0].Name)
	}
}

func TestHandleListParsesParameters(t *testing.T) {
	r, svc := newMockRouter(t)

	want := domain.PageRequest{Page: 1, Size: 5, Sort: domain.Sort{Field: domain.SortByBirthDate, Direction: domain.Desc}}
	svc.On("FindAllPaged", mock.Anything, want).
		Return(domain.NewPage[domain.Client](nil, want, 0), nil).Once()

	rec := do(r, http.MethodGet, "/clients?page=1&linesPerPage=5&direction=desc&orderBy=birthDate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"content": [], "totalElements": 0, "totalPages": 0, "number": 1, "size": 5,
		"numberOfElements": 0, "first": false, "last": true, "empty": true
	}`, rec.Body.String())
}

func TestHandleListRejectsBadParameters(t *testing.T) {
	r, _ := newMockRouter(t)

	for _, target := range []string{
		"/clients?page=abc",
		"/clients?page=-1",
		"/clients?linesPerPage=0",
		"/clients?direction=UP",
		"/clients?orderBy=salary",
	} {
		rec := do(r, http.MethodGet, target, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, target)
		require.Equal(t, clientsdk.ErrorBadRequest, decodeError(t, rec).Error, target)
	}
}

func TestHandleGet(t *testing.T) {
	r, svc := newMockRouter(t)

	svc.On("FindByID", mock.Anything, int64(7)).Return(jose, nil).Once()
	svc.On("FindByID", mock.Anything, int64(33)).Return(domain.Client{}, service.ErrClientNotFound).Once()

	rec := do(r, http.MethodGet, "/clients/id/7", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"id": 7, "name": "Jose Saramago", "cpf": "10239254871", "income": 5000,
		"birthDate": "1996-12-23T07:00:00Z", "children": 0
	}`, rec.Body.String())

	rec = do(r, http.MethodGet, "/clients/id/33", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	require.Equal(t, clientsdk.ErrorResourceNotFound, body.Error)
	require.Equal(t, "/clients/id/33", body.Path)
	require.Equal(t, http.StatusNotFound, body.Status)
	require.False(t, body.Timestamp.IsZero())

	rec = do(r, http.MethodGet, "/clients/id/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearches(t *testing.T) {
	r, svc := newMockRouter(t)
	def := domain.DefaultPageRequest()
	empty := domain.NewPage[domain.Client](nil, def, 0)

	svc.On("FindByIncome", mock.Anything, 5000.0, def).Return(empty, nil).Twice()
	svc.On("FindByIncomeGreaterThan", mock.Anything, 4000.0, def).Return(empty, nil).Twice()
	svc.On("FindByCpfLike", mock.Anything, "1023", def).Return(empty, nil).Twice()

	for _, target := range []string{
		"/clients/income/?income=5000",
		"/clients/income?income=5000.0",
		"/clients/incomeGreaterThan/?income=4000",
		"/clients/incomeGreaterThan?income=4000",
		"/clients/cpfLike/?cpf=1023",
		"/clients/cpfLike?cpf=1023",
	} {
		rec := do(r, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rec.Code, target)
	}

	rec := do(r, http.MethodGet, "/clients/income/?income=lots", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleIncomeSearchRequiresIncome(t *testing.T) {
	r, svc := newMockRouter(t)

	for _, target := range []string{
		"/clients/income/",
		"/clients/income/?income=",
		"/clients/incomeGreaterThan/?page=0",
	} {
		rec := do(r, http.MethodGet, target, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, target)

		body := decodeError(t, rec)
		require.Equal(t, clientsdk.ErrorBadRequest, body.Error)
		require.Contains(t, body.Message, "income is required")
	}

	svc.AssertNotCalled(t, "FindByIncome", mock.Anything, mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "FindByIncomeGreaterThan", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleCreate(t *testing.T) {
	r, svc := newMockRouter(t)

	input := domain.Client{Name: "Ailton Krenak", CPF: "20000000001", Income: 4200, BirthDate: time.Date(1953, 9, 29, 0, 0, 0, 0, time.UTC), Children: 1}
	created := input
	created.ID = 14
	svc.On("Insert", mock.Anything, input).Return(created, nil).Once()

	rec := do(r, http.MethodPost, "/clients", `{
		"id": 99, "name": "Ailton Krenak", "cpf": "20000000001", "income": 4200,
		"birthDate": "1953-09-29T00:00:00Z", "children": 1
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "/clients/id/14", rec.Header().Get("Location"))

	var dto clientsdk.ClientDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	require.Equal(t, int64(14), dto.ID)

	rec = do(r, http.MethodPost, "/clients", `{"name":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateErrors(t *testing.T) {
	r, svc := newMockRouter(t)

	verr := &service.ValidationError{Fields: []service.FieldError{{Field: "name", Message: "must not be blank"}}}
	svc.On("Insert", mock.Anything, mock.MatchedBy(func(c domain.Client) bool { return c.Name == "" })).
		Return(domain.Client{}, verr).Once()
	svc.On("Insert", mock.Anything, mock.MatchedBy(func(c domain.Client) bool { return c.Name == "dup" })).
		Return(domain.Client{}, service.ErrCPFTaken).Once()

	rec := do(r, http.MethodPost, "/clients/", `{"name":""}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeError(t, rec)
	require.Equal(t, clientsdk.ErrorValidation, body.Error)
	require.Equal(t, []clientsdk.FieldMessage{{FieldName: "name", Message: "must not be blank"}}, body.Errors)

	rec = do(r, http.MethodPost, "/clients", `{"name":"dup"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, clientsdk.ErrorDatabase, decodeError(t, rec).Error)
}

func TestHandleUpdate(t *testing.T) {
	r, svc := newMockRouter(t)

	name, income := "Jose Saramago Updated", 5500.0
	patch := domain.ClientPatch{Name: &name, Income: &income}
	updated := patch.Apply(jose)
	svc.On("Update", mock.Anything, int64(7), patch).Return(updated, nil).Once()
	svc.On("Update", mock.Anything, int64(99), mock.Anything).Return(domain.Client{}, service.ErrClientNotFound).Once()

	rec := do(r, http.MethodPut, "/clients/7", `{"id": 1000, "name": "Jose Saramago Updated", "income": 5500.0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var dto clientsdk.ClientDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	require.Equal(t, int64(7), dto.ID)
	require.Equal(t, "Jose Saramago Updated", dto.Name)
	require.Equal(t, 5500.0, dto.Income)

	rec = do(r, http.MethodPut, "/clients/99", `{"name": "Nobody"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "/clients/id/99", decodeError(t, rec).Path)

	rec = do(r, http.MethodPut, "/clients/7", `not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDelete(t *testing.T) {
	r, svc := newMockRouter(t)

	svc.On("Delete", mock.Anything, int64(3)).Return(nil).Once()
	svc.On("Delete", mock.Anything, int64(4)).Return(service.ErrClientNotFound).Once()

	rec := do(r, http.MethodDelete, "/clients/3", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())

	rec = do(r, http.MethodDelete, "/clients/4", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "/clients/id/4", decodeError(t, rec).Path)
}

func TestUnexpectedErrorsAreHidden(t *testing.T) {
	r, svc := newMockRouter(t)

	svc.On("FindByID", mock.Anything, int64(1)).Return(domain.Client{}, errors.New("disk on fire")).Once()

	rec := do(r, http.MethodGet, "/clients/id/1", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	require.Equal(t, clientsdk.ErrorInternal, body.Error)
	require.NotContains(t, body.Message, "disk")
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newMockRouter(t)

	rec := do(r, http.MethodGet, "/nothing/here", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "/nothing/here", decodeError(t, rec).Path)
}
