// Package storetest is a behavioural suite every store driver must pass.
// Each test receives a fresh, migrated store seeded with seed.Fixtures.
package storetest

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/iftm/clients/internal/clients/domain"
	"github.com/iftm/clients/internal/clients/store"
	"github.com/iftm/clients/internal/clients/store/seed"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty store with migrations applied. Cleanup is the
// factory's responsibility.
type Factory func(t *testing.T) store.Store

func ptr[T any](v T) *T { return &v }

func seeded(t *testing.T, newStore Factory) store.Store {
	t.Helper()
	st := newStore(t)
	n, err := seed.Apply(context.Background(), st)
	require.NoError(t, err)
	require.Equal(t, len(seed.Fixtures()), n)
	return st
}

func names(clients []domain.Client) []string {
	out := make([]string, len(clients))
	for i, c := range clients {
		out[i] = c.Name
	}
	return out
}

func page(n, size int, field domain.SortField, dir domain.Direction) domain.PageRequest {
	return domain.PageRequest{Page: n, Size: size, Sort: domain.Sort{Field: field, Direction: dir}}
}

// Run executes the suite against the driver built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("get by id", func(t *testing.T) {
		st := seeded(t, newStore)
		ctx := context.Background()

		c, err := st.Clients().GetClientByID(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, "Jose Saramago", c.Name)
		require.Equal(t, "10239254871", c.CPF)
		require.Equal(t, 5000.0, c.Income)
		require.Equal(t, time.Date(1996, 12, 23, 7, 0, 0, 0, time.UTC), c.BirthDate)
		require.Equal(t, 0, c.Children)

		_, err = st.Clients().GetClientByID(ctx, 33)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("search all pages", func(t *testing.T) {
		st := seeded(t, newStore)
		ctx := context.Background()

		first, err := st.Clients().SearchClients(ctx, domain.ClientFilter{}, page(0, 12, domain.SortByName, domain.Asc))
		require.NoError(t, err)
		require.Len(t, first, 12)
		require.Equal(t, "Carolina Maria de Jesus", first[0].Name)
		require.NotContains(t, names(first), "Toni Morrison")

		second, err := st.Clients().SearchClients(ctx, domain.ClientFilter{}, page(1, 12, domain.SortByName, domain.Asc))
		require.NoError(t, err)
		require.Equal(t, []string{"Toni Morrison"}, names(second))

		beyond, err := st.Clients().SearchClients(ctx, domain.ClientFilter{}, page(5, 12, domain.SortByName, domain.Asc))
		require.NoError(t, err)
		require.Empty(t, beyond)

		total, err := st.Clients().CountClients(ctx, domain.ClientFilter{})
		require.NoError(t, err)
		require.Equal(t, int64(13), total)
	})

	t.Run("huge page index is empty", func(t *testing.T) {
		st := seeded(t, newStore)
		ctx := context.Background()

		for _, n := range []int{math.MaxInt, math.MaxInt/2 + 1} {
			got, err := st.Clients().SearchClients(ctx, domain.ClientFilter{}, page(n, 2, domain.SortByName, domain.Asc))
			require.NoError(t, err)
			require.Empty(t, got)
		}
	})

	t.Run("sort directions", func(t *testing.T) {
		st := seeded(t, newStore)
		ctx := context.Background()

		asc, err := st.Clients().SearchClients(ctx, domain.ClientFilter{}, page(0, 20, domain.SortByIncome, domain.Asc))
		require.NoError(t, err)
		for i := 1; i < len(asc); i++ {
			require.LessOrEqual(t, asc[i-1].Income, asc[i].Income)
		}

		desc, err := st.Clients().SearchClients(ctx, domain.ClientFilter{}, page(0, 20, domain.SortByIncome, domain.Desc))
		require.NoError(t, err)
		for i := 1; i < len(desc); i++ {
			require.GreaterOrEqual(t, desc[i-1].Income, desc[i].Income)
		}

		oldest, err := st.Clients().SearchClients(ctx, domain.ClientFilter{}, page(0, 1, domain.SortByBirthDate, domain.Asc))
		require.NoError(t, err)
		require.Equal(t, []string{"Jorge Amado"}, names(oldest))
	})

	t.Run("income equals", func(t *testing.T) {
		st := seeded(t, newStore)
		ctx := context.Background()
		filter := domain.ClientFilter{IncomeEquals: ptr(5000.0)}

		got, err := st.Clients().SearchClients(ctx, filter, page(0, 12, domain.SortByName, domain.Asc))
		require.NoError(t, err)
		require.Equal(t, []string{"Jose Saramago"}, names(got))

		none, err := st.Clients().CountClients(ctx, domain.ClientFilter{IncomeEquals: ptr(5000.5)})
		require.NoError(t, err)
		require.Zero(t, none)
	})

	t.Run("income greater than keeps insertion order on ties", func(t *testing.T) {
		st := seeded(t, newStore)
		ctx := context.Background()
		filter := domain.ClientFilter{IncomeGreaterThan: ptr(4000.0)}

		got, err := st.Clients().SearchClients(ctx, filter, page(0, 5, domain.SortByIncome, domain.Desc))
		require.NoError(t, err)
		require.Equal(t, []string{
			"Toni Morrison",
			"Carolina Maria de Jesus",
			"Jose Saramago",
			"Silvio Almeida",
			"Djamila Ribeiro",
		}, names(got))

		strict, err := st.Clients().CountClients(ctx, domain.ClientFilter{IncomeGreaterThan: ptr(4500.0)})
		require.NoError(t, err)
		require.Equal(t, int64(3), strict)
	})

	t.Run("cpf contains is a literal substring", func(t *testing.T) {
		st := seeded(t, newStore)
		ctx := context.Background()

		got, err := st.Clients().SearchClients(ctx, domain.ClientFilter{CPFContains: "1023"}, page(0, 12, domain.SortByName, domain.Asc))
		require.NoError(t, err)
		require.Equal(t, []string{"Jose Saramago"}, names(got))

		got, err = st.Clients().SearchClients(ctx, domain.ClientFilter{CPFContains: "102"}, page(0, 12, domain.SortByName, domain.Asc))
		require.NoError(t, err)
		require.Equal(t, []string{"Jorge Amado", "Jose Saramago", "Toni Morrison"}, names(got))

		wildcard, err := st.Clients().CountClients(ctx, domain.ClientFilter{CPFContains: "1%3"})
		require.NoError(t, err)
		require.Zero(t, wildcard)
	})

	t.Run("create assigns ids and enforces unique cpf", func(t *testing.T) {
		st := seeded(t, newStore)
		ctx := context.Background()

		birth := time.Date(1947, 7, 14, 10, 30, 0, 0, time.UTC)
		id, err := st.Clients().CreateClient(ctx, domain.Client{
			Name: "Ailton Krenak", CPF: "20000000001", Income: 6200.5, BirthDate: birth, Children: 3,
		})
		require.NoError(t, err)
		require.Equal(t, int64(14), id)

		got, err := st.Clients().GetClientByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, birth, got.BirthDate)
		require.Equal(t, 6200.5, got.Income)
		require.Equal(t, 3, got.Children)

		_, err = st.Clients().CreateClient(ctx, domain.Client{
			Name: "Someone Else", CPF: "20000000001", BirthDate: birth,
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("update", func(t *testing.T) {
		st := seeded(t, newStore)
		ctx := context.Background()

		c, err := st.Clients().GetClientByID(ctx, 7)
		require.NoError(t, err)
		c.Name = "Jose Saramago Updated"
		c.Income = 5500.0
		require.NoError(t, st.Clients().UpdateClient(ctx, c))

		got, err := st.Clients().GetClientByID(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, c, got)

		c.CPF = "10219344681" // Toni Morrison's
		require.ErrorIs(t, st.Clients().UpdateClient(ctx, c), store.ErrAlreadyExists)

		require.ErrorIs(t, st.Clients().UpdateClient(ctx, domain.Client{ID: 99, CPF: "x", BirthDate: c.BirthDate}), store.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		st := seeded(t, newStore)
		ctx := context.Background()

		require.NoError(t, st.Clients().DeleteClient(ctx, 7))
		_, err := st.Clients().GetClientByID(ctx, 7)
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, st.Clients().DeleteClient(ctx, 7), store.ErrNotFound)

		// the cpf is free again
		_, err = st.Clients().CreateClient(ctx, domain.Client{Name: "Jose", CPF: "10239254871", BirthDate: time.Now()})
		require.NoError(t, err)
	})

	t.Run("with tx rolls back on error", func(t *testing.T) {
		st := seeded(t, newStore)
		ctx := context.Background()
		boom := errors.New("boom")

		err := st.WithTx(ctx, func(tx store.Tx) error {
			c, err := tx.Clients().GetClientByID(ctx, 7)
			if err != nil {
				return err
			}
			c.Name = "Rolled Back"
			if err := tx.Clients().UpdateClient(ctx, c); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		got, err := st.Clients().GetClientByID(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, "Jose Saramago", got.Name)
	})

	t.Run("with tx commits", func(t *testing.T) {
		st := seeded(t, newStore)
		ctx := context.Background()

		err := st.WithTx(ctx, func(tx store.Tx) error {
			return tx.Clients().DeleteClient(ctx, 1)
		})
		require.NoError(t, err)

		total, err := st.Clients().CountClients(ctx, domain.ClientFilter{})
		require.NoError(t, err)
		require.Equal(t, int64(12), total)
	})

	t.Run("seed is idempotent", func(t *testing.T) {
		st := seeded(t, newStore)

		n, err := seed.Apply(context.Background(), st)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("ping", func(t *testing.T) {
		st := newStore(t)
		require.NoError(t, st.Ping(context.Background()))

		empty, err := st.Clients().IsEmpty(context.Background())
		require.NoError(t, err)
		require.True(t, empty)
	})
}
