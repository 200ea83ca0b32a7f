package service

import (
	"fmt"

	"github.com/MKhiriev/go-notes-book/internal/config"
	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/internal/store"
)

type Services struct {
	NoteService    NoteService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	noteService := NewNoteValidationService().Wrap(NewNoteService(storages.NoteRepository, logger))

	return &Services{
		NoteService:    noteService,
		AppInfoService: appInfoService,
	}, nil
}
