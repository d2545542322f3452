package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/iftm/clients/internal/clients/domain"
	"github.com/iftm/clients/internal/clients/store"
	"github.com/iftm/clients/internal/clients/store/storetest"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestStoreConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return newMemoryStore(t)
	})
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	st := newMemoryStore(t)
	require.NoError(t, st.ApplyMigrations())
}

func TestFileDatabaseSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "clients.db")

	st, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())

	birth := time.Date(1960, 4, 13, 7, 50, 0, 0, time.UTC)
	id, err := st.Clients().CreateClient(ctx, domain.Client{
		Name: "Clarice Lispector", CPF: "10919444522", Income: 3800, BirthDate: birth, Children: 2,
	})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	st, err = NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	got, err := st.Clients().GetClientByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Clarice Lispector", got.Name)
	require.Equal(t, birth, got.BirthDate)
}

func TestBirthDateIsNormalisedToUTC(t *testing.T) {
	st := newMemoryStore(t)
	ctx := context.Background()

	local := time.Date(1996, 12, 23, 4, 0, 0, 0, time.FixedZone("BRT", -3*60*60))
	id, err := st.Clients().CreateClient(ctx, domain.Client{Name: "A", CPF: "1", BirthDate: local})
	require.NoError(t, err)

	got, err := st.Clients().GetClientByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, time.Date(1996, 12, 23, 7, 0, 0, 0, time.UTC), got.BirthDate)
}
