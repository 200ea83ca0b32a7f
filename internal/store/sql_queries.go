package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-book/models"
)

const notesTable = "notes"

// noteColumns is the column order every note SELECT returns and scanNote
// expects.
var noteColumns = []string{"id", "title", "content", "created_at", "updated_at"}

func buildListNotesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildGetNoteQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return b.Insert(notesTable).
		Columns(noteColumns...).
		Values(note.ID, note.Title, note.Content, note.CreatedAt, nullTime(note.UpdatedAt)).
		ToSql()
}

// buildUpdateNoteQuery always stamps updated_at; title and content are set
// only when present in the patch.
func buildUpdateNoteQuery(b sq.StatementBuilderType, id string, patch models.NotePatch, updatedAt time.Time) (string, []any, error) {
	query := b.Update(notesTable).Set("updated_at", updatedAt)

	if patch.Title != nil {
		query = query.Set("title", *patch.Title)
	}
	if patch.Content != nil {
		query = query.Set("content", *patch.Content)
	}

	return query.Where(sq.Eq{"id": id}).ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanNote reads one row laid out as noteColumns.
func scanNote(row rowScanner) (models.Note, error) {
	var (
		note      models.Note
		updatedAt sql.NullTime
	)

	if err := row.Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &updatedAt); err != nil {
		return models.Note{}, err
	}

	note.CreatedAt = storedTime(note.CreatedAt)
	if updatedAt.Valid {
		t := storedTime(updatedAt.Time)
		note.UpdatedAt = &t
	}

	return note, nil
}
