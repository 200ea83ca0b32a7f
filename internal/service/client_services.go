package service

import (
	"github.com/MKhiriev/go-notes-book/internal/adapter"
	"github.com/MKhiriev/go-notes-book/internal/logger"
)

type ClientServices struct {
	NoteService    ClientNoteService
	AppInfoService ClientAppInfoService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		NoteService:    NewClientNoteService(serverAdapter, logger),
		AppInfoService: NewClientAppInfoService(serverAdapter),
	}
}
