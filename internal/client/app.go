package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/internal/service"
)

var (
	errNoUI       = errors.New("terminal UI is not provided")
	errNoServices = errors.New("client services are not provided")
)

// UI is the interactive front of the client.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	if services == nil || services.AppInfoService == nil {
		return nil, errNoServices
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run checks the server once for diagnostics and hands control to the UI
// until the user quits or the process is interrupted.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	version, err := a.services.AppInfoService.ServerVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server is not reachable at startup")
	} else {
		a.logger.Info().Str("server_version", version).Msg("connected to server")
	}

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui run: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
