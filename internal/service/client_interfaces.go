package service

import (
	"context"

	"github.com/MKhiriev/go-notes-book/models"
)

// ClientNoteService defines the client-side contract for note operations.
// Every call goes straight to the server; results are returned to the caller,
// which owns the in-memory collection.
type ClientNoteService interface {
	// List fetches all notes from the server, newest first.
	List(ctx context.Context) ([]models.Note, error)

	// Create validates the draft title locally and, when it is non-blank,
	// asks the server to persist the note. Returns the persisted note.
	Create(ctx context.Context, draft models.NoteDraft) (models.Note, error)

	// Update sends the edited title and content of the note identified by
	// id and returns the server's copy.
	Update(ctx context.Context, id string, draft models.NoteDraft) (models.Note, error)

	// Delete removes the note identified by id on the server.
	Delete(ctx context.Context, id string) error
}

// ClientAppInfoService exposes version information for the about overlay.
type ClientAppInfoService interface {
	// ServerVersion returns the version reported by the connected server.
	ServerVersion(ctx context.Context) (string, error)
}
