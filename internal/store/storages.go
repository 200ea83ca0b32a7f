package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-book/internal/config"
	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/internal/utils"
)

// Storages owns the database connection for the lifetime of the process
// and exposes the repositories built on it.
type Storages struct {
	NoteRepository NoteRepository

	db *DB
}

// NewStorages opens the database selected by cfg.DB.DSN, applies the schema
// migrations and builds the repositories. Close must be called on shutdown.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}
	log.Info().Str("func", "NewStorages").Str("dialect", string(db.dialect)).Msg("database schema is up to date")

	return &Storages{
		NoteRepository: NewNoteRepository(db, utils.NewUUIDGenerator(), log),
		db:             db,
	}, nil
}

// NewConnect opens PostgreSQL for "postgres://" and "postgresql://" DSNs and
// SQLite for everything else.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case cfg.DSN == "":
		return nil, ErrUnsupportedDSN
	case isPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}
	return nil
}
