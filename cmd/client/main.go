package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-book/internal/adapter"
	"github.com/MKhiriev/go-notes-book/internal/client"
	"github.com/MKhiriev/go-notes-book/internal/config"
	"github.com/MKhiriev/go-notes-book/internal/logger"
	"github.com/MKhiriev/go-notes-book/internal/service"
	"github.com/MKhiriev/go-notes-book/internal/tui"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("notes-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("notes-client", cfg.App.LogFile)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
