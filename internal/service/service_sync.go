// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/species-sync/internal/config"
	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/internal/store"
	"github.com/MKhiriev/species-sync/models"
)

// syncService is the concrete implementation of SyncService.
//
// Every read runs inside one read-only REPEATABLE READ transaction so the
// counts, versions and rows it returns belong to the same snapshot.
type syncService struct {
	transactor store.Transactor
	cache      store.BundleCache

	threshold      int64
	defaultPerPage int
	maxPerPage     int

	logger *logger.Logger
}

// NewSyncService constructs a SyncService reading through transactor. cache
// may be nil, in which case bundles are always assembled from the store.
func NewSyncService(transactor store.Transactor, cache store.BundleCache, cfg config.Sync, logger *logger.Logger) SyncService {
	return &syncService{
		transactor:     transactor,
		cache:          cache,
		threshold:      cfg.BundleThreshold,
		defaultPerPage: cfg.DefaultPerPage,
		maxPerPage:     cfg.MaxPerPage,
		logger:         logger,
	}
}

// Classify is the staleness decision for a client at since, given the
// number of ledger entries after since and the highest version among them.
//
// More than threshold pending changes forces a bundle re-fetch.
func Classify(since, count, latest, threshold int64) models.ChangeStatus {
	if count == 0 {
		return models.ChangeStatus{UpToDate: true, LatestVersion: since}
	}

	forceBundle := count > threshold
	return models.ChangeStatus{
		UpToDate:      false,
		ForceBundle:   &forceBundle,
		LatestVersion: latest,
		ChangeCount:   count,
	}
}

// CheckChanges implements SyncService.
//
// The latest version is read with its own MAX query over the whole window,
// never derived from a fetched page.
func (s *syncService) CheckChanges(ctx context.Context, since int64) (models.ChangeStatus, error) {
	log := logger.FromContext(ctx)

	if since < 0 {
		return models.ChangeStatus{}, ErrInvalidSinceVersion
	}

	var status models.ChangeStatus
	err := s.transactor.WithinTx(ctx, store.ReadSnapshot, func(repos *store.Repositories) error {
		count, err := repos.Changelog.CountSince(ctx, since)
		if err != nil {
			return err
		}
		if count == 0 {
			status = Classify(since, 0, since, s.threshold)
			return nil
		}

		latest, err := repos.Changelog.MaxVersionSince(ctx, since)
		if err != nil {
			return err
		}

		status = Classify(since, count, latest, s.threshold)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "syncService.CheckChanges").Int64("since", since).Msg("staleness check failed")
		return models.ChangeStatus{}, fmt.Errorf("staleness check failed: %w", err)
	}

	log.Debug().
		Str("func", "syncService.CheckChanges").
		Int64("since", since).
		Int64("count", status.ChangeCount).
		Int64("latest", status.LatestVersion).
		Stringer("decision", status.Decision()).
		Send()

	return status, nil
}

// Incremental implements SyncService.
//
// Repeated mutations of one entity collapse to a single id. An entity whose
// latest entry in the window is a DELETE is reported in Deleted instead of
// being fetched.
func (s *syncService) Incremental(ctx context.Context, since int64) (models.IncrementalChanges, error) {
	log := logger.FromContext(ctx)

	if since < 0 {
		return models.IncrementalChanges{}, ErrInvalidSinceVersion
	}

	result := models.IncrementalChanges{
		LatestVersion:     since,
		EntityCollections: models.NewEntityCollections(),
		Deleted:           models.Tombstones{Species: []int64{}, Media: []int64{}},
	}

	err := s.transactor.WithinTx(ctx, store.ReadSnapshot, func(repos *store.Repositories) error {
		entries, err := repos.Changelog.QuerySince(ctx, since)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}

		touched := collapseEntries(entries)
		result.LatestVersion = touched.latestVersion
		result.Deleted = touched.deleted

		for _, locale := range models.Locales {
			rows, err := repos.Species.ListByIDs(ctx, locale, touched.species)
			if err != nil {
				return err
			}
			result.SetSpecies(locale, rows)
		}

		media, err := repos.Media.ListByIDs(ctx, touched.media)
		if err != nil {
			return err
		}
		result.Media = media

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "syncService.Incremental").Int64("since", since).Msg("incremental fetch failed")
		return models.IncrementalChanges{}, fmt.Errorf("incremental fetch failed: %w", err)
	}

	return result, nil
}

// touchedEntities is the deduplicated view of a ledger window.
type touchedEntities struct {
	species       []int64
	media         []int64
	deleted       models.Tombstones
	latestVersion int64
}

// collapseEntries keeps the last operation per entity. entries must be in
// change_id order.
func collapseEntries(entries []models.ChangeEntry) touchedEntities {
	type key struct {
		entityType models.EntityType
		id         int64
	}

	last := make(map[key]models.Operation, len(entries))
	order := make([]key, 0, len(entries))
	var latest int64

	for _, e := range entries {
		k := key{e.EntityType, e.EntityID}
		if _, seen := last[k]; !seen {
			order = append(order, k)
		}
		last[k] = e.Operation
		latest = max(latest, e.Version)
	}

	t := touchedEntities{
		species:       []int64{},
		media:         []int64{},
		deleted:       models.Tombstones{Species: []int64{}, Media: []int64{}},
		latestVersion: latest,
	}

	for _, k := range order {
		deleted := last[k] == models.OperationDelete
		switch {
		case k.entityType == models.EntitySpecies && deleted:
			t.deleted.Species = append(t.deleted.Species, k.id)
		case k.entityType == models.EntitySpecies:
			t.species = append(t.species, k.id)
		case k.entityType == models.EntityMedia && deleted:
			t.deleted.Media = append(t.deleted.Media, k.id)
		case k.entityType == models.EntityMedia:
			t.media = append(t.media, k.id)
		}
	}

	return t
}

// Bundle implements SyncService.
//
// The ledger maximum is read first; a cached bundle is used only when it was
// stored for exactly that version. An empty ledger yields the baseline
// version.
func (s *syncService) Bundle(ctx context.Context) (models.Bundle, error) {
	log := logger.FromContext(ctx)

	var (
		bundle models.Bundle
		cached bool
	)

	err := s.transactor.WithinTx(ctx, store.ReadSnapshot, func(repos *store.Repositories) error {
		version, err := repos.Changelog.MaxVersion(ctx)
		if err != nil {
			return err
		}
		if version == 0 {
			version = models.BaselineVersion
		}

		if s.cache != nil {
			hit, ok, cacheErr := s.cache.Get(ctx, version)
			if cacheErr != nil {
				log.Warn().Err(cacheErr).Str("func", "syncService.Bundle").Int64("version", version).Msg("bundle cache read failed")
			}
			if ok && hit.Version == version {
				bundle, cached = hit, true
				return nil
			}
		}

		bundle = models.Bundle{Version: version, EntityCollections: models.NewEntityCollections()}
		for _, locale := range models.Locales {
			rows, err := repos.Species.ListAll(ctx, locale)
			if err != nil {
				return err
			}
			bundle.SetSpecies(locale, rows)
		}

		media, err := repos.Media.ListAll(ctx)
		if err != nil {
			return err
		}
		bundle.Media = media

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "syncService.Bundle").Msg("bundle assembly failed")
		return models.Bundle{}, fmt.Errorf("bundle assembly failed: %w", err)
	}

	if !cached && s.cache != nil {
		if err := s.cache.Set(ctx, bundle); err != nil {
			log.Warn().Err(err).Str("func", "syncService.Bundle").Int64("version", bundle.Version).Msg("bundle cache write failed")
		}
	}

	return bundle, nil
}

// Changes implements SyncService. The page window is clamped to the
// configured bounds; Total counts the whole window independently of it.
func (s *syncService) Changes(ctx context.Context, since int64, page models.Pagination) (models.ChangesPage, error) {
	log := logger.FromContext(ctx)

	if since < 0 {
		return models.ChangesPage{}, ErrInvalidSinceVersion
	}

	page = page.Clamp(s.defaultPerPage, s.maxPerPage)
	result := models.ChangesPage{Page: page.Page, PerPage: page.PerPage, Data: []models.ChangeEntry{}}

	err := s.transactor.WithinTx(ctx, store.ReadSnapshot, func(repos *store.Repositories) error {
		total, err := repos.Changelog.CountSince(ctx, since)
		if err != nil {
			return err
		}
		result.Total = total

		if page.StartsBeyond(total) {
			return nil
		}

		data, err := repos.Changelog.Page(ctx, since, uint64(page.PerPage), page.Offset())
		if err != nil {
			return err
		}
		result.Data = data

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "syncService.Changes").
			Int64("since", since).
			Int("page", page.Page).
			Int("per_page", page.PerPage).
			Msg("changes page failed")
		return models.ChangesPage{}, fmt.Errorf("changes page failed: %w", err)
	}

	return result, nil
}
