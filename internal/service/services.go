package service

import (
	"fmt"

	"github.com/MKhiriev/species-sync/internal/config"
	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/internal/store"
)

type Services struct {
	SyncService      SyncService
	CatalogueService CatalogueService
	AuthService      AuthService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, storages.Changelog, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	catalogue := NewCatalogueValidationService().Wrap(NewCatalogueService(storages.Transactor, logger))

	return &Services{
		SyncService:      NewSyncService(storages.Transactor, storages.BundleCache, cfg.Sync, logger),
		CatalogueService: catalogue,
		AuthService:      NewAuthService(cfg.App, logger),
		AppInfoService:   appInfo,
	}, nil
}
