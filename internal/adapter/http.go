package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-notes-book/internal/config"
	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/internal/utils"
	"github.com/MKhiriev/go-notes-book/models"
)

const (
	notesPath   = "/api/notes"
	versionPath = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func notePath(id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", ErrEmptyNoteID
	}
	return notesPath + "/" + url.PathEscape(id), nil
}

// ListNotes implements [ServerAdapter]. It GETs /api/notes.
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&notes).
		Get(notesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list notes request: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if notes == nil {
		notes = []models.Note{}
	}

	h.logger.Debug().Str("func", "httpServerAdapter.ListNotes").Int("count", len(notes)).Msg("notes fetched")
	return notes, nil
}

// CreateNote implements [ServerAdapter]. It POSTs draft to /api/notes and
// expects 201 Created with the persisted note as body.
func (h *httpServerAdapter) CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	var note models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		SetResult(&note).
		Post(notesPath)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: create note request: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	h.logger.Debug().Str("func", "httpServerAdapter.CreateNote").Str("id", note.ID).Msg("note created")
	return note, nil
}

// UpdateNote implements [ServerAdapter]. It PUTs draft to /api/notes/{id}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, id string, draft models.NoteDraft) (models.Note, error) {
	path, err := notePath(id)
	if err != nil {
		return models.Note{}, err
	}

	var note models.Note
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		SetResult(&note).
		Put(path)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: update note request: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	h.logger.Debug().Str("func", "httpServerAdapter.UpdateNote").Str("id", note.ID).Msg("note updated")
	return note, nil
}

// DeleteNote implements [ServerAdapter]. It sends DELETE /api/notes/{id} and
// expects 204 No Content.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, id string) error {
	path, err := notePath(id)
	if err != nil {
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Delete(path)
	if err != nil {
		return fmt.Errorf("%w: delete note request: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().Str("func", "httpServerAdapter.DeleteNote").Str("id", id).Msg("note deleted")
	return nil
}

// GetServerVersion implements [ServerAdapter]. It GETs /api/version, which
// answers with a plain-text body.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("%w: version request: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
