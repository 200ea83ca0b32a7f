package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-notes-book/models"
)

const (
	// FieldTitle requires a non-blank string title.
	FieldTitle = "title"
	// FieldTitleIfSet accepts an absent or null title, otherwise behaves
	// like FieldTitle.
	FieldTitleIfSet = "title if set"
	// FieldID requires a non-blank note id.
	FieldID = "id"
)

type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate accepts models.NoteInput, models.NoteDraft and a plain string id.
// Without fields a NoteInput is validated for creation.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteInput:
		return v.validateNoteInput(ctx, value, fields...)
	case models.NoteDraft:
		return v.validateNoteDraft(ctx, value, fields...)
	case string:
		return v.validateID(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *NoteValidator) validateNoteInput(_ context.Context, input models.NoteInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if !input.Title.Set || !input.Title.IsString || isBlank(input.Title.Value) {
				return ErrTitleRequired
			}
		case FieldTitleIfSet:
			if !input.Title.Set {
				continue
			}
			if !input.Title.IsString || isBlank(input.Title.Value) {
				return ErrInvalidTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNoteDraft(_ context.Context, draft models.NoteDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(draft.Title) {
				return ErrTitleRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateID(id string, fields ...string) error {
	for _, f := range fields {
		if f != FieldID {
			return ErrUnknownField
		}
	}
	if isBlank(id) {
		return ErrInvalidNoteID
	}
	return nil
}
