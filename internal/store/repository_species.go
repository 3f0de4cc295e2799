package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/models"
)

type speciesRepository struct {
	q Querier
}

func NewSpeciesRepository(q Querier) SpeciesRepository {
	return &speciesRepository{q: q}
}

func (r *speciesRepository) ListAll(ctx context.Context, locale models.Locale) ([]models.Species, error) {
	return r.list(ctx, locale, nil)
}

// ListByIDs returns the rows of locale whose species_id is in ids. Ids with
// no row in that locale are skipped.
func (r *speciesRepository) ListByIDs(ctx context.Context, locale models.Locale, ids []int64) ([]models.Species, error) {
	if len(ids) == 0 {
		return []models.Species{}, nil
	}
	return r.list(ctx, locale, ids)
}

func (r *speciesRepository) list(ctx context.Context, locale models.Locale, ids []int64) ([]models.Species, error) {
	log := logger.FromContext(ctx)

	table, err := speciesTable(locale)
	if err != nil {
		return nil, err
	}

	query, args, err := buildListSpeciesQuery(table, ids)
	if err != nil {
		log.Err(err).Str("func", "speciesRepository.list").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "speciesRepository.list").
			Str("locale", string(locale)).
			Int("ids", len(ids)).
			Msg("failed to query species")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanSpeciesRows(ctx, rows, "speciesRepository.list")
}

func scanSpeciesRows(ctx context.Context, rows *sql.Rows, fn string) ([]models.Species, error) {
	result := make([]models.Species, 0, 50)
	for rows.Next() {
		var s models.Species
		var updatedAt sql.NullTime
		if err := rows.Scan(
			&s.SpeciesID,
			&s.ScientificName,
			&s.CommonName,
			&s.Etymology,
			&s.Habitat,
			&s.IdentificationCharacters,
			&s.LeafType,
			&s.FruitType,
			&s.Phenology,
			&s.SeedGermination,
			&s.Pest,
			&updatedAt,
		); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to scan species row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if updatedAt.Valid {
			s.UpdatedAt = &updatedAt.Time
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *speciesRepository) Upsert(ctx context.Context, locale models.Locale, row models.Species) (models.Species, error) {
	log := logger.FromContext(ctx)

	table, err := speciesTable(locale)
	if err != nil {
		return models.Species{}, err
	}

	query, args, err := buildUpsertSpeciesQuery(table, row)
	if err != nil {
		log.Err(err).Str("func", "speciesRepository.Upsert").Msg("failed to create query")
		return models.Species{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updatedAt sql.NullTime
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		log.Err(err).
			Str("func", "speciesRepository.Upsert").
			Str("locale", string(locale)).
			Int64("species_id", row.SpeciesID).
			Msg("failed to upsert species")
		return models.Species{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if updatedAt.Valid {
		row.UpdatedAt = &updatedAt.Time
	}

	return row, nil
}

func (r *speciesRepository) Delete(ctx context.Context, speciesID int64) error {
	log := logger.FromContext(ctx)

	var affected int64
	for _, query := range []string{deleteSpeciesEN, deleteSpeciesTET} {
		res, err := r.q.ExecContext(ctx, query, speciesID)
		if err != nil {
			log.Err(err).
				Str("func", "speciesRepository.Delete").
				Int64("species_id", speciesID).
				Msg("failed to delete species")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		affected += n
	}

	if affected == 0 {
		return ErrSpeciesNotFound
	}

	return nil
}

func (r *speciesRepository) Exists(ctx context.Context, speciesID int64) (bool, error) {
	var exists bool
	if err := r.q.QueryRowContext(ctx, speciesExists, speciesID).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "speciesRepository.Exists").
			Int64("species_id", speciesID).
			Msg("failed to check species existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return exists, nil
}
