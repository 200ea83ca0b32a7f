package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/models"
)

// noteRepository is the database/sql implementation of [NoteRepository].
// It works against PostgreSQL and SQLite alike; the dialect of the
// underlying [*DB] decides placeholder format and error classification.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that database interactions are traced with the request's fields.
type noteRepository struct {
	db     *DB
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by db. New note ids
// come from ids.
func NewNoteRepository(db *DB, ids IDGenerator, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
}

// ListNotes returns all notes ordered by creation time, newest first.
// Returns an empty, non-nil slice when the table is empty.
func (r *noteRepository) ListNotes(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(r.db.builder())
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("failed to execute query for listing notes")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 32)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*noteRepository.ListNotes").Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// GetNote returns the note with the given id or [ErrNoteNotFound].
func (r *noteRepository) GetNote(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Str("note_id", id).Msg("failed to get note")
		return models.Note{}, r.wrap(ErrExecutingQuery, err)
	}

	return note, nil
}

// CreateNote inserts note and returns the stored record.
//
// An empty ID is replaced by a generated one; a zero CreatedAt becomes the
// current time. Timestamps are normalised to UTC milliseconds before being
// written so the returned value equals what a later read yields.
//
// Error handling:
//   - unique/primary key violation: [ErrNoteAlreadyExists].
//   - any other driver error: wrapped [ErrExecutingStatement].
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if note.ID == "" {
		note.ID = r.ids.Generate()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = r.now()
	}
	note.CreatedAt = storedTime(note.CreatedAt)
	if note.UpdatedAt != nil {
		t := storedTime(*note.UpdatedAt)
		note.UpdatedAt = &t
	}

	query, args, err := buildInsertNoteQuery(r.db.builder(), note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Str("note_id", note.ID).Msg("failed to insert note")
		return models.Note{}, r.wrap(ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*noteRepository.CreateNote").Str("note_id", note.ID).Msg("note created")
	return note, nil
}

// UpdateNote applies patch to the note with the given id inside a single
// transaction and returns the updated record. UpdatedAt is always set to
// the current time; CreatedAt is never touched.
//
// Returns [ErrNoteNotFound] when no row matched id.
func (r *noteRepository) UpdateNote(ctx context.Context, id string, patch models.NotePatch) (models.Note, error) {
	log := logger.FromContext(ctx)

	b := r.db.builder()
	updateQuery, updateArgs, err := buildUpdateNoteQuery(b, id, patch, storedTime(r.now()))
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("failed to build update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	selectQuery, selectArgs, err := buildGetNoteQuery(b, id)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("failed to build select query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("failed to begin transaction")
		return models.Note{}, r.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	result, err := tx.ExecContext(ctx, updateQuery, updateArgs...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Str("note_id", id).Msg("failed to update note")
		return models.Note{}, r.wrap(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Str("note_id", id).Msg("failed to read affected rows")
		return models.Note{}, r.wrap(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Note{}, ErrNoteNotFound
	}

	note, err := scanNote(tx.QueryRowContext(ctx, selectQuery, selectArgs...))
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Str("note_id", id).Msg("failed to read updated note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Str("note_id", id).Msg("failed to commit transaction")
		return models.Note{}, r.wrap(ErrCommitingTransaction, err)
	}

	return note, nil
}

// DeleteNote removes the note with the given id.
// Returns [ErrNoteNotFound] when there was nothing to delete.
func (r *noteRepository) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Str("note_id", id).Msg("failed to delete note")
		return r.wrap(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Str("note_id", id).Msg("failed to read affected rows")
		return r.wrap(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// wrap attaches op and, when the driver error is recognised, the matching
// store sentinel.
func (r *noteRepository) wrap(op, err error) error {
	switch r.db.classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrNoteAlreadyExists, err)
	case ConnectionFailure:
		return fmt.Errorf("%w: %w: %w", op, ErrDatabaseUnavailable, err)
	}
	return fmt.Errorf("%w: %w", op, err)
}
