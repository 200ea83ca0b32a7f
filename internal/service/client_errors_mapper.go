// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-book/internal/adapter"
	"github.com/MKhiriev/go-notes-book/internal/app"
	"github.com/MKhiriev/go-notes-book/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgTitleRequired:
			return ErrValidationTitleRequired
		case app.MsgInvalidTitle:
			return ErrValidationInvalidTitle
		case app.MsgInvalidJSON:
			return ErrInvalidDataProvided
		}
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrNoteNotFound

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrNoteAlreadyExists

	case errors.Is(err, adapter.ErrServerUnreachable),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)

	case errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerError
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
