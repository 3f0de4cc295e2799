package main

import (
	"context"

	"github.com/MKhiriev/species-sync/internal/config"
	"github.com/MKhiriev/species-sync/internal/handler"
	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/internal/server"
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
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("species-sync-server")
	log.Info().Str("build_version", buildInfo.BuildVersion()).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("starting")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = orNA(buildInfo.BuildVersion())
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
