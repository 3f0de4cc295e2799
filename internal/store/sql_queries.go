package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/species-sync/models"
)

// psql builds PostgreSQL queries with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	// appendChange bumps the counter and inserts the ledger row in one
	// statement. The UPDATE keeps the counter row locked until the enclosing
	// transaction ends, so versions commit in the order they are assigned.
	appendChange = `WITH next AS (
			UPDATE version_counter SET value = value + 1 WHERE id = 1 RETURNING value
		)
		INSERT INTO changelog (entity_type, entity_id, operation, version)
		SELECT $1, $2, $3, value FROM next
		RETURNING change_id, version, created_at;`

	// lockCounter takes the counter row lock ahead of Append, for writers
	// that must read entity state under the same serialization.
	lockCounter = `SELECT value FROM version_counter WHERE id = 1 FOR UPDATE;`

	querySince = `SELECT change_id, entity_type, entity_id, version, operation, created_at
		FROM changelog
		WHERE version > $1
		ORDER BY change_id;`

	countSince = `SELECT COUNT(*) FROM changelog WHERE version > $1;`

	maxVersionSince = `SELECT COALESCE(MAX(version), 0) FROM changelog WHERE version > $1;`

	maxVersion = `SELECT COALESCE(MAX(version), 0) FROM changelog;`

	speciesExists = `SELECT EXISTS (SELECT 1 FROM species_en WHERE species_id = $1)
		OR EXISTS (SELECT 1 FROM species_tet WHERE species_id = $1);`

	deleteSpeciesEN  = `DELETE FROM species_en WHERE species_id = $1;`
	deleteSpeciesTET = `DELETE FROM species_tet WHERE species_id = $1;`

	createMedia = `INSERT INTO media (species_id, download_link, streaming_link, alt_text)
		VALUES ($1, $2, $3, $4)
		RETURNING media_id, updated_at;`

	updateMedia = `UPDATE media
		SET species_id = $1, download_link = $2, streaming_link = $3, alt_text = $4, updated_at = NOW()
		WHERE media_id = $5
		RETURNING updated_at;`

	deleteMedia = `DELETE FROM media WHERE media_id = $1;`
)

var changeColumns = []string{"change_id", "entity_type", "entity_id", "version", "operation", "created_at"}

var speciesColumns = []string{
	"species_id", "scientific_name", "common_name", "etymology", "habitat",
	"identification_characters", "leaf_type", "fruit_type", "phenology",
	"seed_germination", "pest", "updated_at",
}

var mediaColumns = []string{"media_id", "species_id", "download_link", "streaming_link", "alt_text", "updated_at"}

var speciesTables = map[models.Locale]string{
	models.LocaleEnglish: "species_en",
	models.LocaleTetum:   "species_tet",
}

func speciesTable(locale models.Locale) (string, error) {
	table, ok := speciesTables[locale]
	if !ok {
		return "", ErrUnknownLocale
	}
	return table, nil
}

func buildChangesPageQuery(since int64, limit, offset uint64) (string, []any, error) {
	return psql.Select(changeColumns...).
		From("changelog").
		Where(sq.Gt{"version": since}).
		OrderBy("change_id").
		Limit(limit).
		Offset(offset).
		ToSql()
}

func buildListSpeciesQuery(table string, ids []int64) (string, []any, error) {
	q := psql.Select(speciesColumns...).From(table).OrderBy("species_id")
	if ids != nil {
		q = q.Where(sq.Eq{"species_id": ids})
	}
	return q.ToSql()
}

// buildUpsertSpeciesQuery replaces every column of one locale row.
func buildUpsertSpeciesQuery(table string, row models.Species) (string, []any, error) {
	return psql.Insert(table).
		Columns(speciesColumns[:len(speciesColumns)-1]...).
		Values(
			row.SpeciesID, row.ScientificName, row.CommonName, row.Etymology, row.Habitat,
			row.IdentificationCharacters, row.LeafType, row.FruitType, row.Phenology,
			row.SeedGermination, row.Pest,
		).
		Suffix(`ON CONFLICT (species_id) DO UPDATE SET
			scientific_name = EXCLUDED.scientific_name,
			common_name = EXCLUDED.common_name,
			etymology = EXCLUDED.etymology,
			habitat = EXCLUDED.habitat,
			identification_characters = EXCLUDED.identification_characters,
			leaf_type = EXCLUDED.leaf_type,
			fruit_type = EXCLUDED.fruit_type,
			phenology = EXCLUDED.phenology,
			seed_germination = EXCLUDED.seed_germination,
			pest = EXCLUDED.pest,
			updated_at = NOW()
			RETURNING updated_at`).
		ToSql()
}

func buildListMediaQuery(ids []int64) (string, []any, error) {
	q := psql.Select(mediaColumns...).From("media").OrderBy("media_id")
	if ids != nil {
		q = q.Where(sq.Eq{"media_id": ids})
	}
	return q.ToSql()
}
