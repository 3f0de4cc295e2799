package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/species-sync/internal/config"
	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/internal/store"
	"github.com/MKhiriev/species-sync/models"
)

type appInfoService struct {
	appVersion string

	changelog store.ChangelogRepository

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, changelog store.ChangelogRepository, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		changelog:  changelog,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health reports the server as healthy when the ledger can be read.
func (s *appInfoService) Health(ctx context.Context) (models.Health, error) {
	latest, err := s.changelog.MaxVersion(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "appInfoService.Health").Msg("ledger is unreachable")
		return models.Health{Status: "unavailable", Version: s.appVersion}, fmt.Errorf("ledger is unreachable: %w", err)
	}
	if latest == 0 {
		latest = models.BaselineVersion
	}

	return models.Health{Status: "ok", Version: s.appVersion, LatestVersion: latest}, nil
}
