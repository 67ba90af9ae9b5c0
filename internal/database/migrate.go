package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies pending schema migrations. It opens a dedicated
// connection so closing the migrate instance cannot disturb the main
// pool.
func Migrate(driver, dsn string) error {
	name := "sqlite"
	if driver == "postgres" {
		name = "pgx"
	}

	db, err := sql.Open(name, dsn)
	if err != nil {
		return fmt.Errorf("opening migration database: %w", err)
	}
	defer db.Close()

	var target database.Driver

	switch driver {
	case "postgres":
		target, err = migratepgx.WithInstance(db, &migratepgx.Config{})
	default:
		target, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	}

	if err != nil {
		return fmt.Errorf("creating %s migration driver: %w", driver, err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("creating iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}
