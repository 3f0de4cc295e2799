package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/internal/store"
	"github.com/MKhiriev/species-sync/models"
)

// catalogueService writes catalogue rows and records each write in the
// version ledger within the same transaction.
type catalogueService struct {
	transactor store.Transactor
	logger     *logger.Logger
}

func NewCatalogueService(transactor store.Transactor, logger *logger.Logger) CatalogueService {
	return &catalogueService{transactor: transactor, logger: logger}
}

// PutSpecies replaces the supplied locale rows of one species. The ledger
// entry is CREATE when no locale variant existed before, UPDATE otherwise.
// The counter lock is taken before the existence check so that concurrent
// first writes of one species see each other and only one records CREATE.
func (c *catalogueService) PutSpecies(ctx context.Context, species models.SpeciesUpsert) (models.ChangeEntry, error) {
	log := logger.FromContext(ctx)

	var entry models.ChangeEntry
	err := c.transactor.WithinTx(ctx, nil, func(repos *store.Repositories) error {
		if err := repos.Changelog.LockCounter(ctx); err != nil {
			return err
		}

		exists, err := repos.Species.Exists(ctx, species.SpeciesID)
		if err != nil {
			return err
		}

		written := 0
		for _, locale := range models.Locales {
			supplied := species.ByLocale(locale)
			if supplied == nil {
				continue
			}
			row := *supplied
			row.SpeciesID = species.SpeciesID
			if _, err := repos.Species.Upsert(ctx, locale, row); err != nil {
				return err
			}
			written++
		}
		if written == 0 {
			return ErrInvalidDataProvided
		}

		operation := models.OperationUpdate
		if !exists {
			operation = models.OperationCreate
		}

		entry, err = repos.Changelog.Append(ctx, models.EntitySpecies, species.SpeciesID, operation)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "catalogueService.PutSpecies").Int64("species_id", species.SpeciesID).Msg("species write failed")
		return models.ChangeEntry{}, fmt.Errorf("species write failed: %w", err)
	}

	log.Info().
		Str("func", "catalogueService.PutSpecies").
		Int64("species_id", species.SpeciesID).
		Int64("version", entry.Version).
		Str("operation", string(entry.Operation)).
		Msg("species written")

	return entry, nil
}

// DeleteSpecies removes every locale variant of speciesID. Media rows that
// reference it are left in place.
func (c *catalogueService) DeleteSpecies(ctx context.Context, speciesID int64) (models.ChangeEntry, error) {
	log := logger.FromContext(ctx)

	var entry models.ChangeEntry
	err := c.transactor.WithinTx(ctx, nil, func(repos *store.Repositories) error {
		if err := repos.Species.Delete(ctx, speciesID); err != nil {
			return err
		}

		var err error
		entry, err = repos.Changelog.Append(ctx, models.EntitySpecies, speciesID, models.OperationDelete)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "catalogueService.DeleteSpecies").Int64("species_id", speciesID).Msg("species delete failed")
		return models.ChangeEntry{}, fmt.Errorf("species delete failed: %w", err)
	}

	log.Info().Str("func", "catalogueService.DeleteSpecies").Int64("species_id", speciesID).Int64("version", entry.Version).Msg("species deleted")

	return entry, nil
}

// CreateMedia attaches a new media row to an existing species.
func (c *catalogueService) CreateMedia(ctx context.Context, media models.Media) (models.Media, models.ChangeEntry, error) {
	log := logger.FromContext(ctx)

	var (
		created models.Media
		entry   models.ChangeEntry
	)
	err := c.transactor.WithinTx(ctx, nil, func(repos *store.Repositories) error {
		if err := requireSpecies(ctx, repos, media.SpeciesID); err != nil {
			return err
		}

		var err error
		created, err = repos.Media.Create(ctx, media)
		if err != nil {
			return err
		}

		entry, err = repos.Changelog.Append(ctx, models.EntityMedia, created.MediaID, models.OperationCreate)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "catalogueService.CreateMedia").Int64("species_id", media.SpeciesID).Msg("media create failed")
		return models.Media{}, models.ChangeEntry{}, fmt.Errorf("media create failed: %w", err)
	}

	return created, entry, nil
}

func (c *catalogueService) UpdateMedia(ctx context.Context, media models.Media) (models.Media, models.ChangeEntry, error) {
	log := logger.FromContext(ctx)

	var (
		updated models.Media
		entry   models.ChangeEntry
	)
	err := c.transactor.WithinTx(ctx, nil, func(repos *store.Repositories) error {
		if err := requireSpecies(ctx, repos, media.SpeciesID); err != nil {
			return err
		}

		var err error
		updated, err = repos.Media.Update(ctx, media)
		if err != nil {
			return err
		}

		entry, err = repos.Changelog.Append(ctx, models.EntityMedia, updated.MediaID, models.OperationUpdate)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "catalogueService.UpdateMedia").Int64("media_id", media.MediaID).Msg("media update failed")
		return models.Media{}, models.ChangeEntry{}, fmt.Errorf("media update failed: %w", err)
	}

	return updated, entry, nil
}

func (c *catalogueService) DeleteMedia(ctx context.Context, mediaID int64) (models.ChangeEntry, error) {
	log := logger.FromContext(ctx)

	var entry models.ChangeEntry
	err := c.transactor.WithinTx(ctx, nil, func(repos *store.Repositories) error {
		if err := repos.Media.Delete(ctx, mediaID); err != nil {
			return err
		}

		var err error
		entry, err = repos.Changelog.Append(ctx, models.EntityMedia, mediaID, models.OperationDelete)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "catalogueService.DeleteMedia").Int64("media_id", mediaID).Msg("media delete failed")
		return models.ChangeEntry{}, fmt.Errorf("media delete failed: %w", err)
	}

	return entry, nil
}

func requireSpecies(ctx context.Context, repos *store.Repositories, speciesID int64) error {
	exists, err := repos.Species.Exists(ctx, speciesID)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrSpeciesNotFound
	}
	return nil
}
