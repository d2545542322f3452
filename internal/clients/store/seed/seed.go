// Package seed loads the demo client records into an empty store.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/iftm/clients/internal/clients/domain"
	"github.com/iftm/clients/internal/clients/store"
)

func instant(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

// Fixtures returns the seed clients in insertion order. A fresh store assigns
// them ids 1..n, so "Jose Saramago" is always id 7.
func Fixtures() []domain.Client {
	return []domain.Client{
		{Name: "Conceição Evaristo", CPF: "10619244881", Income: 1500.0, BirthDate: instant("2020-07-13T20:50:00Z"), Children: 2},
		{Name: "Lázaro Ramos", CPF: "10619244882", Income: 2500.0, BirthDate: instant("1996-12-23T07:00:00Z"), Children: 2},
		{Name: "Clarice Lispector", CPF: "10919444522", Income: 3800.0, BirthDate: instant("1960-04-13T07:50:00Z"), Children: 2},
		{Name: "Carolina Maria de Jesus", CPF: "10419244771", Income: 7500.0, BirthDate: instant("1996-12-23T07:00:00Z"), Children: 0},
		{Name: "Gilberto Gil", CPF: "10419344882", Income: 2500.0, BirthDate: instant("1949-05-05T07:00:00Z"), Children: 4},
		{Name: "Silvio Almeida", CPF: "10164334861", Income: 4500.0, BirthDate: instant("1970-09-23T07:00:00Z"), Children: 2},
		{Name: "Jose Saramago", CPF: "10239254871", Income: 5000.0, BirthDate: instant("1996-12-23T07:00:00Z"), Children: 0},
		{Name: "Toni Morrison", CPF: "10219344681", Income: 10000.0, BirthDate: instant("1940-02-23T07:00:00Z"), Children: 0},
		{Name: "Chimamanda Adichie", CPF: "10114274861", Income: 1500.0, BirthDate: instant("1956-09-23T07:00:00Z"), Children: 2},
		{Name: "Djamila Ribeiro", CPF: "10619244884", Income: 4500.0, BirthDate: instant("1975-11-10T07:00:00Z"), Children: 1},
		{Name: "Jorge Amado", CPF: "10204374161", Income: 2500.0, BirthDate: instant("1918-09-23T07:00:00Z"), Children: 0},
		{Name: "Lima Barreto", CPF: "10304374162", Income: 1200.0, BirthDate: instant("1960-02-23T07:00:00Z"), Children: 1},
		{Name: "Machado de Assis", CPF: "10314374163", Income: 3000.0, BirthDate: instant("1939-06-21T07:00:00Z"), Children: 0},
	}
}

// Apply inserts the fixtures when the store holds no clients and returns how
// many were inserted. A non-empty store is left untouched.
func Apply(ctx context.Context, st store.Store) (int, error) {
	empty, err := st.Clients().IsEmpty(ctx)
	if err != nil {
		return 0, err
	}
	if !empty {
		return 0, nil
	}

	fixtures := Fixtures()
	err = st.WithTx(ctx, func(tx store.Tx) error {
		for _, c := range fixtures {
			if _, err := tx.Clients().CreateClient(ctx, c); err != nil {
				return fmt.Errorf("seeding %q: %w", c.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(fixtures), nil
}
