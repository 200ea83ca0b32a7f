package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/internal/store"
	"github.com/MKhiriev/go-notes-book/models"
)

type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (n *noteService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return n.noteRepository.ListNotes(ctx)
}

func (n *noteService) GetNote(ctx context.Context, id string) (models.Note, error) {
	return n.noteRepository.GetNote(ctx, id)
}

func (n *noteService) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	note := models.Note{
		Title:   strings.TrimSpace(input.Title.Value),
		Content: input.Content.Text(),
	}

	created, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		return models.Note{}, err
	}

	n.logger.Debug().Str("func", "noteService.CreateNote").Str("id", created.ID).Msg("note created")
	return created, nil
}

func (n *noteService) UpdateNote(ctx context.Context, id string, input models.NoteInput) (models.Note, error) {
	var patch models.NotePatch
	if input.Title.Set {
		title := strings.TrimSpace(input.Title.Value)
		patch.Title = &title
	}
	if input.Content.Set {
		content := input.Content.Text()
		patch.Content = &content
	}

	updated, err := n.noteRepository.UpdateNote(ctx, id, patch)
	if err != nil {
		return models.Note{}, err
	}

	n.logger.Debug().Str("func", "noteService.UpdateNote").Str("id", id).Bool("timestamp_only", patch.IsEmpty()).Msg("note updated")
	return updated, nil
}

func (n *noteService) DeleteNote(ctx context.Context, id string) error {
	if err := n.noteRepository.DeleteNote(ctx, id); err != nil {
		return err
	}

	n.logger.Debug().Str("func", "noteService.DeleteNote").Str("id", id).Msg("note deleted")
	return nil
}
