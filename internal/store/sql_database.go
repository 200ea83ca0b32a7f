package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/migrations"
)

// Dialect names the SQL flavour behind a [DB]. The values double as goose
// dialect names.
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

// DB is an open database handle together with the dialect-specific pieces
// repositories need: a placeholder format and an error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}

// storedTime normalises an instant to the precision persisted by the store.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
