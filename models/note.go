// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a single persisted note.
//
// ID and CreatedAt are assigned once at creation and never change.
// UpdatedAt is nil until the first successful edit and is omitted from JSON
// while unset.
type Note struct {
	// ID is an opaque globally unique identifier (random UUID).
	ID string `json:"id"`

	// Title is never empty for a persisted note.
	Title string `json:"title"`

	// Content is the note body; empty string when none was given.
	Content string `json:"content"`

	// CreatedAt is the creation instant in UTC.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the instant of the last successful edit in UTC.
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// NotePatch is a partial update of a note. Only non-nil fields are applied.
type NotePatch struct {
	Title   *string
	Content *string
}

// IsEmpty reports whether the patch changes no user-visible field.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}

// NoteDraft is the body the client sends when creating or editing a note.
type NoteDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
