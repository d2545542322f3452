package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/iftm/clients/internal/clients/domain"
	"github.com/iftm/clients/pkg/clientsdk"
	"github.com/stretchr/testify/require"
)

func testConfig(driver string) Config {
	return Config{
		DatabaseDriver:      driver,
		Seed:                true,
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		ShutdownGracePeriod: time.Second,
		ReadHeaderTimeout:   time.Second,
	}
}

func TestNewServesSeededClients(t *testing.T) {
	application, err := New(testConfig(DriverMemory))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clients/id/7", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var dto clientsdk.ClientDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	require.Equal(t, "Jose Saramago", dto.Name)
}

func TestNewWithoutSeed(t *testing.T) {
	cfg := testConfig(DriverMemory)
	cfg.Seed = false

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	total, err := application.db.Clients().CountClients(context.Background(), domain.ClientFilter{})
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestOpenStoreSQLiteFile(t *testing.T) {
	cfg := testConfig(DriverSQLite)
	cfg.DatabaseFile = filepath.Join(t.TempDir(), "clients.db")

	st, err := OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Ping(context.Background()))
}

func TestOpenStoreRejectsBadDriverConfig(t *testing.T) {
	_, err := OpenStore(context.Background(), testConfig("oracle"))
	require.ErrorIs(t, err, ErrUnknownDriver)

	_, err = OpenStore(context.Background(), testConfig(DriverPostgres))
	require.ErrorContains(t, err, "CLIENTS_DATABASE_URL")
}

func TestShutdownClosesStore(t *testing.T) {
	application, err := New(testConfig(DriverMemory))
	require.NoError(t, err)

	require.NoError(t, application.Shutdown())
	require.Error(t, application.db.Ping(context.Background()))
}
