package http

import (
	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/internal/service"
)

// Handler serves the Notes API on top of the note and app-info services.
type Handler struct {
	notes   service.NoteService
	appInfo service.AppInfoService

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{logger: logger}
	if services != nil {
		h.notes = services.NoteService
		h.appInfo = services.AppInfoService
	}

	logger.Info().Msg("http handler created")
	return h
}
