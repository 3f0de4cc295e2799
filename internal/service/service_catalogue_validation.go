package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/species-sync/internal/validators"
	"github.com/MKhiriev/species-sync/models"
)

// CatalogueValidationService rejects malformed writes before they reach the
// wrapped CatalogueService.
type CatalogueValidationService struct {
	inner     CatalogueService
	validator validators.Validator
}

func NewCatalogueValidationService() CatalogueServiceWrapper {
	return &CatalogueValidationService{
		validator: validators.NewCatalogueValidator(),
	}
}

func (v *CatalogueValidationService) PutSpecies(ctx context.Context, species models.SpeciesUpsert) (models.ChangeEntry, error) {
	if err := v.validator.Validate(ctx, species); err != nil {
		return models.ChangeEntry{}, fmt.Errorf("error during species validation before saving: %w", err)
	}

	return v.inner.PutSpecies(ctx, species)
}

func (v *CatalogueValidationService) DeleteSpecies(ctx context.Context, speciesID int64) (models.ChangeEntry, error) {
	if err := v.validator.Validate(ctx, models.Species{SpeciesID: speciesID}, validators.FieldSpeciesID); err != nil {
		return models.ChangeEntry{}, fmt.Errorf("error during species validation before deleting: %w", err)
	}

	return v.inner.DeleteSpecies(ctx, speciesID)
}

func (v *CatalogueValidationService) CreateMedia(ctx context.Context, media models.Media) (models.Media, models.ChangeEntry, error) {
	// media_id is assigned by the store
	err := v.validator.Validate(ctx, media,
		validators.FieldSpeciesID,
		validators.FieldDownloadLink,
		validators.FieldStreamingLink,
	)
	if err != nil {
		return models.Media{}, models.ChangeEntry{}, fmt.Errorf("error during media validation before saving: %w", err)
	}

	return v.inner.CreateMedia(ctx, media)
}

func (v *CatalogueValidationService) UpdateMedia(ctx context.Context, media models.Media) (models.Media, models.ChangeEntry, error) {
	if err := v.validator.Validate(ctx, media); err != nil {
		return models.Media{}, models.ChangeEntry{}, fmt.Errorf("error during media validation before updating: %w", err)
	}

	return v.inner.UpdateMedia(ctx, media)
}

func (v *CatalogueValidationService) DeleteMedia(ctx context.Context, mediaID int64) (models.ChangeEntry, error) {
	if err := v.validator.Validate(ctx, models.Media{MediaID: mediaID}, validators.FieldMediaID); err != nil {
		return models.ChangeEntry{}, fmt.Errorf("error during media validation before deleting: %w", err)
	}

	return v.inner.DeleteMedia(ctx, mediaID)
}

func (v *CatalogueValidationService) Wrap(wrapper CatalogueService) CatalogueService {
	v.inner = wrapper
	return v
}
