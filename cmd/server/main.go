package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-book/internal/config"
	"github.com/MKhiriev/go-notes-book/internal/handler"
	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/internal/server"
	"github.com/MKhiriev/go-notes-book/internal/service"
	"github.com/MKhiriev/go-notes-book/internal/store"
	"github.com/MKhiriev/go-notes-book/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("notes-server")
	if err := run(buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// run wires the server and blocks until it stops. Storages are closed on
// every return path.
func run(buildInfo models.AppBuildInfo, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("get configs: %w", err)
	}
	if buildInfo.HasVersion() && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		return fmt.Errorf("create services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	srv.RunServer()
	return nil
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
