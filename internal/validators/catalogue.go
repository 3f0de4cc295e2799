package validators

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/species-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldSpeciesID      = "species_id"
	FieldScientificName = "scientific_name"
	FieldLeafType       = "leaf_type"
	FieldFruitType      = "fruit_type"
	FieldLocales        = "locales"
	FieldMediaID        = "media_id"
	FieldDownloadLink   = "download_link"
	FieldStreamingLink  = "streaming_link"
)

// LeafTypes is the controlled vocabulary for Species.LeafType.
var LeafTypes = []string{
	"Simple",
	"Pinnately compound (single)",
	"Pinnately compound (double)",
	"Pinnately compound (triple)",
	"Palmately compound",
}

// FruitTypes is the controlled vocabulary for Species.FruitType.
var FruitTypes = []string{
	"Drupe",
	"Capsule",
	"Follicle",
	"Pod",
}

// CatalogueValidator validates species and media writes.
type CatalogueValidator struct{}

func NewCatalogueValidator() Validator {
	return &CatalogueValidator{}
}

// Validate dispatches on the dynamic type of obj. Values and pointers of
// models.Species, models.SpeciesUpsert and models.Media are supported.
func (v *CatalogueValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Species:
		return v.validateSpecies(ctx, value, fields...)
	case *models.Species:
		return v.validateSpecies(ctx, *value, fields...)

	case models.SpeciesUpsert:
		return v.validateSpeciesUpsert(ctx, value, fields...)
	case *models.SpeciesUpsert:
		return v.validateSpeciesUpsert(ctx, *value, fields...)

	case models.Media:
		return v.validateMedia(ctx, value, fields...)
	case *models.Media:
		return v.validateMedia(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CatalogueValidator) validateSpecies(_ context.Context, s models.Species, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSpeciesID, FieldScientificName, FieldLeafType, FieldFruitType}
	}

	for _, f := range fields {
		switch f {
		case FieldSpeciesID:
			if s.SpeciesID <= 0 {
				return ErrInvalidSpeciesID
			}
		case FieldScientificName:
			if strings.TrimSpace(s.ScientificName) == "" {
				return ErrEmptyScientificName
			}
		case FieldLeafType:
			if s.LeafType != "" && !slices.Contains(LeafTypes, s.LeafType) {
				return fmt.Errorf("%w: %q", ErrInvalidLeafType, s.LeafType)
			}
		case FieldFruitType:
			if s.FruitType != "" && !slices.Contains(FruitTypes, s.FruitType) {
				return fmt.Errorf("%w: %q", ErrInvalidFruitType, s.FruitType)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSpeciesUpsert checks the path id and every supplied locale row. A
// locale row may omit species_id; a non-zero one must match the path.
func (v *CatalogueValidator) validateSpeciesUpsert(ctx context.Context, up models.SpeciesUpsert, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSpeciesID, FieldLocales}
	}

	for _, f := range fields {
		switch f {
		case FieldSpeciesID:
			if up.SpeciesID <= 0 {
				return ErrInvalidSpeciesID
			}
		case FieldLocales:
			supplied := 0
			for _, locale := range models.Locales {
				row := up.ByLocale(locale)
				if row == nil {
					continue
				}
				supplied++
				if row.SpeciesID != 0 && row.SpeciesID != up.SpeciesID {
					return fmt.Errorf("locale %s: %w", locale, ErrLocaleIDMismatch)
				}
				if err := v.validateSpecies(ctx, *row, FieldScientificName, FieldLeafType, FieldFruitType); err != nil {
					return fmt.Errorf("locale %s: %w", locale, err)
				}
			}
			if supplied == 0 {
				return ErrNoLocaleProvided
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CatalogueValidator) validateMedia(_ context.Context, m models.Media, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMediaID, FieldSpeciesID, FieldDownloadLink, FieldStreamingLink}
	}

	for _, f := range fields {
		switch f {
		case FieldMediaID:
			if m.MediaID <= 0 {
				return ErrInvalidMediaID
			}
		case FieldSpeciesID:
			if m.SpeciesID <= 0 {
				return ErrInvalidSpeciesID
			}
		case FieldDownloadLink:
			if !isValidLink(m.DownloadLink, true) {
				return ErrInvalidDownloadLink
			}
		case FieldStreamingLink:
			if !isValidLink(m.StreamingLink, false) {
				return ErrInvalidStreamingLink
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidLink accepts absolute http(s) URLs. An empty link is valid only when
// it is not required.
func isValidLink(link string, required bool) bool {
	if link == "" {
		return !required
	}

	u, err := url.Parse(link)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
