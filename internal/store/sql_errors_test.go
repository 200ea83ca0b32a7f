package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: UniqueViolation},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), want: UniqueViolation},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: ConnectionFailure},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: ConnectionFailure},
		{name: "admin shutdown", err: pgError(pgerrcode.AdminShutdown), want: ConnectionFailure},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: Unclassified},
		{name: "check violation", err: pgError(pgerrcode.CheckViolation), want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{
			name: "primary key",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey},
			want: UniqueViolation,
		},
		{
			name: "unique",
			err:  fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}),
			want: UniqueViolation,
		},
		{
			name: "check constraint",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck},
			want: Unclassified,
		},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: ConnectionFailure},
		{name: "cant open", err: sqlite3.Error{Code: sqlite3.ErrCantOpen}, want: ConnectionFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
