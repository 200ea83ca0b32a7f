// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-book/internal/adapter"
	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/internal/validators"
	"github.com/MKhiriev/go-notes-book/models"
)

type clientNoteService struct {
	serverAdapter adapter.ServerAdapter
	validator     validators.Validator

	logger *logger.Logger
}

func NewClientNoteService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{
		serverAdapter: serverAdapter,
		validator:     validators.NewNoteValidator(),
		logger:        logger,
	}
}

func (s *clientNoteService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := s.serverAdapter.ListNotes(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientNoteService.List").Msg("error fetching notes")
		return nil, fmt.Errorf("list notes: %w", mapAdapterError(err))
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

func (s *clientNoteService) Create(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	if err := s.validator.Validate(ctx, draft, validators.FieldTitle); err != nil {
		return models.Note{}, ErrValidationTitleRequired
	}

	note, err := s.serverAdapter.CreateNote(ctx, draft)
	if err != nil {
		s.logger.Err(err).Str("func", "clientNoteService.Create").Msg("error creating note")
		return models.Note{}, fmt.Errorf("create note: %w", mapAdapterError(err))
	}

	return note, nil
}

func (s *clientNoteService) Update(ctx context.Context, id string, draft models.NoteDraft) (models.Note, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	if err := s.validator.Validate(ctx, draft, validators.FieldTitle); err != nil {
		return models.Note{}, ErrValidationTitleRequired
	}

	note, err := s.serverAdapter.UpdateNote(ctx, id, draft)
	if err != nil {
		s.logger.Err(err).Str("func", "clientNoteService.Update").Str("id", id).Msg("error updating note")
		return models.Note{}, fmt.Errorf("update note: %w", mapAdapterError(err))
	}

	return note, nil
}

func (s *clientNoteService) Delete(ctx context.Context, id string) error {
	if err := s.serverAdapter.DeleteNote(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "clientNoteService.Delete").Str("id", id).Msg("error deleting note")
		return fmt.Errorf("delete note: %w", mapAdapterError(err))
	}

	return nil
}
