package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-notes-book/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeInput(t *testing.T, body string) models.NoteInput {
	t.Helper()
	var in models.NoteInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func TestNoteValidator_CreateInput(t *testing.T) {
	v := NewNoteValidator()

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "valid title", body: `{"title":"Groceries"}`},
		{name: "valid with content", body: `{"title":"a","content":"b"}`},
		{name: "missing title", body: `{"content":"x"}`, wantErr: ErrTitleRequired},
		{name: "null title", body: `{"title":null}`, wantErr: ErrTitleRequired},
		{name: "empty title", body: `{"title":""}`, wantErr: ErrTitleRequired},
		{name: "whitespace title", body: `{"title":"   "}`, wantErr: ErrTitleRequired},
		{name: "numeric title", body: `{"title":42}`, wantErr: ErrTitleRequired},
		{name: "object title", body: `{"title":{"a":1}}`, wantErr: ErrTitleRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), decodeInput(t, tt.body))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNoteValidator_UpdateInput(t *testing.T) {
	v := NewNoteValidator()

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "empty body", body: `{}`},
		{name: "content only", body: `{"content":"new"}`},
		{name: "null title", body: `{"title":null}`},
		{name: "new title", body: `{"title":"Renamed"}`},
		{name: "blank title", body: `{"title":"  "}`, wantErr: ErrInvalidTitle},
		{name: "boolean title", body: `{"title":true}`, wantErr: ErrInvalidTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := decodeInput(t, tt.body)
			err := v.Validate(context.Background(), in, FieldTitleIfSet)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNoteValidator_Draft(t *testing.T) {
	v := NewNoteValidator()

	assert.NoError(t, v.Validate(context.Background(), models.NoteDraft{Title: "x"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.NoteDraft{Title: " \t"}), ErrTitleRequired)
	assert.ErrorIs(t, v.Validate(context.Background(), models.NoteDraft{}), ErrTitleRequired)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.NoteDraft{Title: "x"}), ErrUnsupportedType)
}

func TestNoteValidator_ID(t *testing.T) {
	v := NewNoteValidator()

	assert.NoError(t, v.Validate(context.Background(), "abc", FieldID))
	assert.NoError(t, v.Validate(context.Background(), "abc"))
	assert.ErrorIs(t, v.Validate(context.Background(), ""), ErrInvalidNoteID)
	assert.ErrorIs(t, v.Validate(context.Background(), "abc", FieldTitle), ErrUnknownField)
}

func TestNoteValidator_Errors(t *testing.T) {
	v := NewNoteValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.NoteInput{}, "nope"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(context.Background(), models.NoteDraft{Title: "x"}, "nope"), ErrUnknownField)
}
