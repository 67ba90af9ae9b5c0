// Package database opens the storage backend and applies schema
// migrations. Two drivers are supported: a local SQLite file (the
// default) and PostgreSQL.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Open connects to the backend and verifies it with a ping. For sqlite
// the parent directory of the database file is created if missing.
func Open(driver, dsn string) (*sql.DB, error) {
	name := "sqlite"

	if driver == "postgres" {
		name = "pgx"
	} else if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if driver == "postgres" {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	} else {
		// SQLite has a single writer.
		db.SetMaxOpenConns(1)
	}

	return db, nil
}
