package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iftm/clients/internal/clients/service"
	"github.com/iftm/clients/internal/clients/store/drivers/sqlite"
	"github.com/iftm/clients/internal/clients/store/seed"
	"github.com/iftm/clients/pkg/clientsdk"
	"github.com/stretchr/testify/require"
)

// newSeededServer wires the real service over a seeded in-memory sqlite
// database and returns an SDK client pointed at it.
func newSeededServer(t *testing.T) *clientsdk.SDKClient {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	_, err = seed.Apply(context.Background(), st)
	require.NoError(t, err)

	r := NewRouter("test", st, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.ClientService = service.NewClientService(st)
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return clientsdk.NewSDKClient(srv.URL)
}

func dtoNames(p *clientsdk.Page[clientsdk.ClientDTO]) []string {
	out := make([]string, len(p.Content))
	for i, c := range p.Content {
		out[i] = c.Name
	}
	return out
}

func TestClientsEndToEnd(t *testing.T) {
	client := newSeededServer(t)
	ctx := context.Background()

	t.Run("find all paged", func(t *testing.T) {
		page, err := client.ListClients(ctx, clientsdk.PageParams{})
		require.NoError(t, err)
		require.Len(t, page.Content, 12)
		require.Equal(t, int64(13), page.TotalElements)
		require.Equal(t, 2, page.TotalPages)
		require.Equal(t, "Carolina Maria de Jesus", page.Content[0].Name)
	})

	t.Run("huge page index is empty", func(t *testing.T) {
		for _, n := range []int{math.MaxInt, 1 << 62} {
			page, err := client.ListClients(ctx, clientsdk.PageParams{Page: n, LinesPerPage: 2})
			require.NoError(t, err)
			require.Empty(t, page.Content)
			require.True(t, page.Empty)
			require.Equal(t, int64(13), page.TotalElements)
			require.Equal(t, 7, page.TotalPages)
			require.Equal(t, n, page.Number)
		}
	})

	t.Run("find by id", func(t *testing.T) {
		dto, err := client.GetClient(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, "Jose Saramago", dto.Name)
		require.Equal(t, "1996-12-23T07:00:00Z", dto.BirthDate.Format("2006-01-02T15:04:05Z07:00"))

		_, err = client.GetClient(ctx, 33)
		require.True(t, clientsdk.IsNotFound(err))
		var apiErr *clientsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "/clients/id/33", apiErr.Body.Path)
	})

	t.Run("find by income", func(t *testing.T) {
		page, err := client.FindByIncome(ctx, 5000, clientsdk.PageParams{})
		require.NoError(t, err)
		require.Equal(t, []string{"Jose Saramago"}, dtoNames(page))
	})

	t.Run("find by income greater than", func(t *testing.T) {
		page, err := client.FindByIncomeGreaterThan(ctx, 4000, clientsdk.PageParams{
			LinesPerPage: 5,
			Direction:    "DESC",
			OrderBy:      "income",
		})
		require.NoError(t, err)
		require.Equal(t, []string{
			"Toni Morrison",
			"Carolina Maria de Jesus",
			"Jose Saramago",
			"Silvio Almeida",
			"Djamila Ribeiro",
		}, dtoNames(page))
		require.Equal(t, int64(5), page.TotalElements)
	})

	t.Run("find by cpf like", func(t *testing.T) {
		page, err := client.FindByCpfLike(ctx, "1023", clientsdk.PageParams{})
		require.NoError(t, err)
		require.Equal(t, []string{"Jose Saramago"}, dtoNames(page))

		page, err = client.FindByCpfLike(ctx, "%", clientsdk.PageParams{})
		require.NoError(t, err)
		require.True(t, page.Empty)
	})

	t.Run("update", func(t *testing.T) {
		name, income := "Jose Saramago Updated", 5500.0
		dto, err := client.UpdateClient(ctx, 7, clientsdk.UpdateClientRequest{Name: &name, Income: &income})
		require.NoError(t, err)
		require.Equal(t, int64(7), dto.ID)
		require.Equal(t, name, dto.Name)
		require.Equal(t, income, dto.Income)
		require.Equal(t, "10239254871", dto.CPF)

		_, err = client.UpdateClient(ctx, 99, clientsdk.UpdateClientRequest{Name: &name})
		require.True(t, clientsdk.IsNotFound(err))
		var apiErr *clientsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "/clients/id/99", apiErr.Body.Path)

		taken := "10219344681"
		_, err = client.UpdateClient(ctx, 7, clientsdk.UpdateClientRequest{CPF: &taken})
		require.True(t, clientsdk.IsConflict(err))
	})

	t.Run("create and delete", func(t *testing.T) {
		created, err := client.CreateClient(ctx, clientsdk.ClientDTO{
			Name: "Ailton Krenak", CPF: "20000000001", Income: 4200,
			BirthDate: mustTime(t, "1953-09-29T00:00:00Z"), Children: 1,
		})
		require.NoError(t, err)
		require.Equal(t, int64(14), created.ID)

		require.NoError(t, client.DeleteClient(ctx, created.ID))
		require.True(t, clientsdk.IsNotFound(client.DeleteClient(ctx, created.ID)))
	})

	t.Run("create validation", func(t *testing.T) {
		_, err := client.CreateClient(ctx, clientsdk.ClientDTO{Name: " ", Income: -5})
		require.True(t, clientsdk.IsValidation(err))

		var apiErr *clientsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		fields := map[string]bool{}
		for _, f := range apiErr.Body.Errors {
			fields[f.FieldName] = true
		}
		require.Equal(t, map[string]bool{"name": true, "cpf": true, "income": true, "birthDate": true}, fields)
	})
}

func TestHealthEndpoints(t *testing.T) {
	client := newSeededServer(t)
	ctx := context.Background()

	live, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestReadyzReportsClosedStore(t *testing.T) {
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.Close())

	rec := httptest.NewRecorder()
	ReadyzHandler(time.Now(), "test", st).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body clientsdk.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "degraded", body.Status)
	require.Contains(t, body.Checks.Database, "error")
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return tm
}
