package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It tells a repository which store sentinel a
// driver error corresponds to.
type ErrorClassification int

const (
	// Unclassified is the default for unrecognised errors; they surface as
	// plain infrastructure failures.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates a primary key or unique constraint collision.
	UniqueViolation

	// ConnectionFailure indicates the database could not be reached or
	// refused work (connection loss, shutdown, locked file).
	ConnectionFailure
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. If err is nil or is not a
// PostgreSQL driver error, [Unclassified] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - 23505 unique_violation: [UniqueViolation]
//   - Class 08 connection exceptions, 57P01..57P03: [ConnectionFailure]
//
// Any other code is [Unclassified].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation

	// Class 57: operator intervention
	case pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.CannotConnectNow:
		return ConnectionFailure
	}

	if pgerrcode.IsConnectionException(pgErr.Code) {
		return ConnectionFailure
	}

	return Unclassified
}

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator] using sqlite3 primary and
// extended result codes.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch sqliteErr.Code {
	case sqlite3.ErrConstraint:
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return UniqueViolation
		}
		// older builds report only the primary code
		if strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed") {
			return UniqueViolation
		}
	case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen:
		return ConnectionFailure
	}

	return Unclassified
}
