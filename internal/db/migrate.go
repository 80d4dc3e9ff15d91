package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"campaign-advisor/db/migrations"
)

// ErrDirty means an earlier run stopped inside a migration and the schema
// needs a manual fix before the campaign table can be used.
var ErrDirty = errors.New("campaign schema is dirty")

// Migrate creates or upgrades the campaign_performance schema at addr.
func Migrate(addr string) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	if _, dirty, err := mg.Version(); err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	} else if dirty {
		return ErrDirty
	}

	err = mg.Migrate(migrations.Version)
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
