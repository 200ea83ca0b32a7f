// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Notes API.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400). The
// server's {"error": "..."} message is kept after the sentinel, separated by
// ": ".
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-book/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Notes API.
type ServerAdapter interface {
	// ListNotes fetches every note, newest first. An empty collection is
	// returned as a non-nil empty slice.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// CreateNote sends draft to the server and returns the persisted note
	// with its server-assigned id and creation time.
	CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error)

	// UpdateNote replaces title and content of the note identified by id and
	// returns the updated note.
	UpdateNote(ctx context.Context, id string, draft models.NoteDraft) (models.Note, error)

	// DeleteNote removes the note identified by id.
	DeleteNote(ctx context.Context, id string) error

	// GetServerVersion returns the plain-text version reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
