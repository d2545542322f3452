package postgres

import (
	"errors"
	"fmt"

	"github.com/iftm/clients/internal/clients/store/drivers/postgres/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ApplyMigrations brings the schema up to date with the embedded migrations.
// A dirty schema is reported instead of being forced.
func (s *Store) ApplyMigrations() error {
	driver, err := postgres.WithInstance(s.db, &postgres.Config{})
	if err != nil {
		return err
	}

	source, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return err
	}

	_, dirty, err := instance.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("reading migration version: %w", err)
	}
	if dirty {
		return errors.New("database is in a dirty state, requires manual intervention")
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
