// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the notes book in the terminal.
//
// The whole UI is a single bubbletea model. Server calls run inside tea.Cmd
// functions and report back as messages, so the note cache and the page-turn
// state are only ever touched from the program's event loop.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/internal/service"
	"github.com/MKhiriev/go-notes-book/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoServices = errors.New("client services are not provided")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.NoteService == nil || services.AppInfoService == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newBookModel(ctx, t.services, t.buildInfo, t.logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
