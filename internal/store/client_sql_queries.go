// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/species-sync/models"
)

const (
	getWatermark = `SELECT version FROM sync_state WHERE id = 1;`

	setWatermark = `
		INSERT INTO sync_state (id, version, synced_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET version = excluded.version, synced_at = excluded.synced_at;`

	clearReplicaSpeciesEN  = `DELETE FROM species_en;`
	clearReplicaSpeciesTET = `DELETE FROM species_tet;`
	clearReplicaMedia      = `DELETE FROM media;`

	deleteReplicaSpeciesEN  = `DELETE FROM species_en WHERE species_id = ?;`
	deleteReplicaSpeciesTET = `DELETE FROM species_tet WHERE species_id = ?;`
	deleteReplicaMedia      = `DELETE FROM media WHERE media_id = ?;`
)

// sqlite keeps the default "?" placeholders.
func buildReplaceSpeciesQuery(table string, s models.Species) (string, []any, error) {
	return sq.Insert(table).
		Options("OR REPLACE").
		Columns(speciesColumns...).
		Values(
			s.SpeciesID, s.ScientificName, s.CommonName, s.Etymology, s.Habitat,
			s.IdentificationCharacters, s.LeafType, s.FruitType, s.Phenology,
			s.SeedGermination, s.Pest, s.UpdatedAt,
		).
		ToSql()
}

func buildReplaceMediaQuery(m models.Media) (string, []any, error) {
	return sq.Insert("media").
		Options("OR REPLACE").
		Columns(mediaColumns...).
		Values(m.MediaID, m.SpeciesID, m.DownloadLink, m.StreamingLink, m.AltText, m.UpdatedAt).
		ToSql()
}

func buildReplicaSelectQuery(table string, columns []string, orderBy string) (string, []any, error) {
	return sq.Select(columns...).From(table).OrderBy(orderBy).ToSql()
}
