package store

import (
	"context"

	"github.com/MKhiriev/go-notes-book/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository is the persistence boundary for notes.
type NoteRepository interface {
	// ListNotes returns every note, newest first.
	ListNotes(ctx context.Context) ([]models.Note, error)
	// GetNote returns the note with the given id or ErrNoteNotFound.
	GetNote(ctx context.Context, id string) (models.Note, error)
	// CreateNote persists a note, assigning ID and CreatedAt when unset.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	// UpdateNote applies patch, stamps UpdatedAt and returns the new record.
	UpdateNote(ctx context.Context, id string, patch models.NotePatch) (models.Note, error)
	// DeleteNote removes the note or returns ErrNoteNotFound.
	DeleteNote(ctx context.Context, id string) error
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// IDGenerator produces new note identifiers.
type IDGenerator interface {
	Generate() string
}
