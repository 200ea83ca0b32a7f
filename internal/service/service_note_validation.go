package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-book/internal/store"
	"github.com/MKhiriev/go-notes-book/internal/validators"
	"github.com/MKhiriev/go-notes-book/models"
)

type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return v.inner.ListNotes(ctx)
}

func (v *NoteValidationService) GetNote(ctx context.Context, id string) (models.Note, error) {
	if err := v.validator.Validate(ctx, id, validators.FieldID); err != nil {
		return models.Note{}, fmt.Errorf("error during note id validation: %w", validationError(err))
	}

	return v.inner.GetNote(ctx, id)
}

func (v *NoteValidationService) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	if err := v.validator.Validate(ctx, input, validators.FieldTitle); err != nil {
		return models.Note{}, fmt.Errorf("error during note validation before creating: %w", validationError(err))
	}

	return v.inner.CreateNote(ctx, input)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, id string, input models.NoteInput) (models.Note, error) {
	if err := v.validator.Validate(ctx, id, validators.FieldID); err != nil {
		return models.Note{}, fmt.Errorf("error during note id validation: %w", validationError(err))
	}
	if err := v.validator.Validate(ctx, input, validators.FieldTitleIfSet); err != nil {
		return models.Note{}, fmt.Errorf("error during note validation before updating: %w", validationError(err))
	}

	return v.inner.UpdateNote(ctx, id, input)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, id, validators.FieldID); err != nil {
		return fmt.Errorf("error during note id validation: %w", validationError(err))
	}

	return v.inner.DeleteNote(ctx, id)
}

func (v *NoteValidationService) Wrap(wrapper NoteService) NoteService {
	v.inner = wrapper
	return v
}

// validationError translates validator errors into service errors the
// transport layer can map to a status code.
func validationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrTitleRequired):
		return ErrValidationTitleRequired
	case errors.Is(err, validators.ErrInvalidTitle):
		return ErrValidationInvalidTitle
	case errors.Is(err, validators.ErrInvalidNoteID):
		return store.ErrNoteNotFound
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
