package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/species-sync/internal/adapter"
	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/internal/store"
	"github.com/MKhiriev/species-sync/models"
)

type clientSyncService struct {
	replica store.ReplicaRepository
	adapter adapter.ServerAdapter
}

func NewClientSyncService(replica store.ReplicaRepository, serverAdapter adapter.ServerAdapter) ClientSyncService {
	return &clientSyncService{
		replica: replica,
		adapter: serverAdapter,
	}
}

func (s *clientSyncService) Sync(ctx context.Context) (models.SyncDecision, error) {
	log := logger.FromContext(ctx)

	watermark, err := s.replica.Watermark(ctx)
	if errors.Is(err, store.ErrReplicaNotInitialized) {
		log.Info().Str("func", "clientSyncService.Sync").Msg("replica is empty, fetching bundle")
		return models.DecisionForceBundle, s.syncBundle(ctx)
	}
	if err != nil {
		return models.DecisionUpToDate, fmt.Errorf("read replica watermark: %w", err)
	}

	status, err := s.adapter.CheckChanges(ctx, watermark)
	if err != nil {
		return models.DecisionUpToDate, fmt.Errorf("check changes: %w", err)
	}

	decision := status.Decision()
	log.Debug().
		Str("func", "clientSyncService.Sync").
		Int64("watermark", watermark).
		Int64("latest", status.LatestVersion).
		Int64("count", status.ChangeCount).
		Stringer("decision", decision).
		Send()

	switch decision {
	case models.DecisionUpToDate:
		return decision, nil
	case models.DecisionForceBundle:
		return decision, s.syncBundle(ctx)
	default:
		return decision, s.syncIncremental(ctx, watermark)
	}
}

func (s *clientSyncService) syncBundle(ctx context.Context) error {
	bundle, err := s.adapter.Bundle(ctx)
	if err != nil {
		return fmt.Errorf("fetch bundle: %w", err)
	}

	if err = s.replica.ApplyBundle(ctx, bundle); err != nil {
		return fmt.Errorf("apply bundle locally: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "clientSyncService.syncBundle").
		Int64("version", bundle.Version).
		Int("species_en", len(bundle.SpeciesEN)).
		Int("species_tet", len(bundle.SpeciesTET)).
		Int("media", len(bundle.Media)).
		Msg("replica replaced from bundle")

	return nil
}

func (s *clientSyncService) syncIncremental(ctx context.Context, watermark int64) error {
	changes, err := s.adapter.Incremental(ctx, watermark)
	if err != nil {
		return fmt.Errorf("fetch incremental changes: %w", err)
	}

	if err = s.replica.ApplyIncremental(ctx, changes); err != nil {
		return fmt.Errorf("apply incremental changes locally: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "clientSyncService.syncIncremental").
		Int64("from", watermark).
		Int64("to", changes.LatestVersion).
		Int("deleted_species", len(changes.Deleted.Species)).
		Int("deleted_media", len(changes.Deleted.Media)).
		Msg("replica advanced")

	return nil
}
