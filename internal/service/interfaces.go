package service

import (
	"context"

	"github.com/MKhiriev/go-notes-book/models"
)

// NoteService is the server-side use-case layer over the note repository.
type NoteService interface {
	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, id string) (models.Note, error)

	// CreateNote persists a new note from a decoded request body. The title
	// must be a non-blank string; content is coerced to text.
	CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error)

	// UpdateNote applies the fields present in input. Absent or null fields
	// are left unchanged.
	UpdateNote(ctx context.Context, id string, input models.NoteInput) (models.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}
