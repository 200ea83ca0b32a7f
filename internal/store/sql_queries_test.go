// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-book/models"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildListNotesQuery(t *testing.T) {
	query, args, err := buildListNotesQuery(pgBuilder)

	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t,
		"SELECT id, title, content, created_at, updated_at FROM notes ORDER BY created_at DESC, id DESC",
		query)
}

func Test_buildGetNoteQuery_Placeholders(t *testing.T) {
	tests := []struct {
		name      string
		builder   sq.StatementBuilderType
		wantQuery string
	}{
		{
			name:      "postgres",
			builder:   pgBuilder,
			wantQuery: "SELECT id, title, content, created_at, updated_at FROM notes WHERE id = $1",
		},
		{
			name:      "sqlite",
			builder:   sqliteBuilder,
			wantQuery: "SELECT id, title, content, created_at, updated_at FROM notes WHERE id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetNoteQuery(tt.builder, "abc")

			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, []any{"abc"}, args)
		})
	}
}

func Test_buildInsertNoteQuery(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	note := models.Note{ID: "id-1", Title: "T", Content: "C", CreatedAt: createdAt}

	query, args, err := buildInsertNoteQuery(pgBuilder, note)

	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO notes (id,title,content,created_at,updated_at) VALUES ($1,$2,$3,$4,$5)",
		query)
	assert.Equal(t, []any{"id-1", "T", "C", createdAt, sql.NullTime{}}, args)
}

func Test_buildUpdateNoteQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	title := "new title"
	content := "new content"

	tests := []struct {
		name      string
		patch     models.NotePatch
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "title and content",
			patch:     models.NotePatch{Title: &title, Content: &content},
			wantQuery: "UPDATE notes SET updated_at = $1, title = $2, content = $3 WHERE id = $4",
			wantArgs:  []any{now, title, content, "id-1"},
		},
		{
			name:      "title only",
			patch:     models.NotePatch{Title: &title},
			wantQuery: "UPDATE notes SET updated_at = $1, title = $2 WHERE id = $3",
			wantArgs:  []any{now, title, "id-1"},
		},
		{
			name:      "empty patch still stamps updated_at",
			patch:     models.NotePatch{},
			wantQuery: "UPDATE notes SET updated_at = $1 WHERE id = $2",
			wantArgs:  []any{now, "id-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateNoteQuery(pgBuilder, "id-1", tt.patch, now)

			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildDeleteNoteQuery(t *testing.T) {
	query, args, err := buildDeleteNoteQuery(sqliteBuilder, "id-1")

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM notes WHERE id = ?", query)
	assert.Equal(t, []any{"id-1"}, args)
}

func Test_storedTime(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	in := time.Date(2026, 1, 2, 8, 4, 5, 123456789, loc)

	got := storedTime(in)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 123000000, got.Nanosecond())
	assert.True(t, got.Equal(in.Truncate(time.Millisecond)))
}
