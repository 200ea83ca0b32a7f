// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose schema migrations of every supported
// SQL dialect.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Supported dialects; the values are goose dialect names.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var dialectDirs = map[string]string{
	DialectPostgres: "postgres",
	DialectSQLite:   "sqlite",
}

var (
	ErrNilDB              = errors.New("db is nil")
	ErrUnsupportedDialect = errors.New("unsupported migration dialect")
)

// Migrate applies all pending migrations for dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return ErrNilDB
	}

	dir, ok := dialectDirs[dialect]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
