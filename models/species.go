package models

import "time"

// Locale identifies a language variant of the species tables.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleTetum   Locale = "tet"
)

// Locales lists every locale variant held by the entity store, in the order
// they appear in bundle and incremental payloads.
var Locales = []Locale{LocaleEnglish, LocaleTetum}

// Species is one localized species row. Rows of different locales share
// SpeciesID.
type Species struct {
	SpeciesID                int64      `json:"species_id"`
	ScientificName           string     `json:"scientific_name"`
	CommonName               string     `json:"common_name"`
	Etymology                string     `json:"etymology"`
	Habitat                  string     `json:"habitat"`
	IdentificationCharacters string     `json:"identification_characters"`
	LeafType                 string     `json:"leaf_type"`
	FruitType                string     `json:"fruit_type"`
	Phenology                string     `json:"phenology"`
	SeedGermination          string     `json:"seed_germination"`
	Pest                     string     `json:"pest"`
	UpdatedAt                *time.Time `json:"updated_at,omitempty"`
}

// SpeciesUpsert is the body of a species write: the full replacement row for
// each locale that is being written. A nil locale leaves that variant as is.
type SpeciesUpsert struct {
	SpeciesID int64    `json:"-"`
	English   *Species `json:"en,omitempty"`
	Tetum     *Species `json:"tet,omitempty"`
}

// ByLocale returns the row supplied for the given locale, if any.
func (s SpeciesUpsert) ByLocale(locale Locale) *Species {
	switch locale {
	case LocaleEnglish:
		return s.English
	case LocaleTetum:
		return s.Tetum
	default:
		return nil
	}
}
