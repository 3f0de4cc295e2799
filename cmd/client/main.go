package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/species-sync/internal/adapter"
	"github.com/MKhiriev/species-sync/internal/client"
	"github.com/MKhiriev/species-sync/internal/config"
	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/internal/service"
	"github.com/MKhiriev/species-sync/internal/store"
	"github.com/MKhiriev/species-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("species-sync-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("species-sync-client", cfg.LogFile)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter)

	app, err := client.NewApp(services, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}
