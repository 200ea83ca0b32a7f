package http

import (
	"context"

	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/internal/service"
	"github.com/MKhiriev/go-notes-book/models"
)

// fakeNoteService implements service.NoteService with overridable funcs.
// An unset func returns zero values.
type fakeNoteService struct {
	list   func(ctx context.Context) ([]models.Note, error)
	get    func(ctx context.Context, id string) (models.Note, error)
	create func(ctx context.Context, input models.NoteInput) (models.Note, error)
	update func(ctx context.Context, id string, input models.NoteInput) (models.Note, error)
	delete func(ctx context.Context, id string) error
}

func (f *fakeNoteService) ListNotes(ctx context.Context) ([]models.Note, error) {
	if f.list == nil {
		return nil, nil
	}
	return f.list(ctx)
}

func (f *fakeNoteService) GetNote(ctx context.Context, id string) (models.Note, error) {
	if f.get == nil {
		return models.Note{}, nil
	}
	return f.get(ctx, id)
}

func (f *fakeNoteService) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	if f.create == nil {
		return models.Note{}, nil
	}
	return f.create(ctx, input)
}

func (f *fakeNoteService) UpdateNote(ctx context.Context, id string, input models.NoteInput) (models.Note, error) {
	if f.update == nil {
		return models.Note{}, nil
	}
	return f.update(ctx, id, input)
}

func (f *fakeNoteService) DeleteNote(ctx context.Context, id string) error {
	if f.delete == nil {
		return nil
	}
	return f.delete(ctx, id)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func newTestRouter(notes service.NoteService) *Handler {
	return NewHandler(&service.Services{
		NoteService:    notes,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}, logger.Nop())
}
