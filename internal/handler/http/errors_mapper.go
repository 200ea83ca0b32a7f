package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-book/internal/app"
	"github.com/MKhiriev/go-notes-book/internal/service"
	"github.com/MKhiriev/go-notes-book/internal/store"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []errorStatus{
	{service.ErrValidationTitleRequired, http.StatusBadRequest, app.MsgTitleRequired},
	{service.ErrValidationInvalidTitle, http.StatusBadRequest, app.MsgInvalidTitle},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidJSON},

	{store.ErrNoteNotFound, http.StatusNotFound, app.MsgNotFound},
	{store.ErrNoteAlreadyExists, http.StatusConflict, app.MsgNoteAlreadyExists},
	{store.ErrDatabaseUnavailable, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
