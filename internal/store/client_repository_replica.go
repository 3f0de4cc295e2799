package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/models"
)

type replicaRepository struct {
	*SQLiteDB
}

func NewReplicaRepository(db *SQLiteDB) ReplicaRepository {
	return &replicaRepository{SQLiteDB: db}
}

func (r *replicaRepository) Watermark(ctx context.Context) (int64, error) {
	return watermark(ctx, r.DB)
}

func watermark(ctx context.Context, q Querier) (int64, error) {
	var version int64
	err := q.QueryRowContext(ctx, getWatermark).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrReplicaNotInitialized
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "replicaRepository.Watermark").Msg("failed to read watermark")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return version, nil
}

func (r *replicaRepository) ApplyBundle(ctx context.Context, bundle models.Bundle) error {
	return r.withinTx(ctx, "replicaRepository.ApplyBundle", func(tx *sql.Tx) error {
		for _, query := range []string{clearReplicaSpeciesEN, clearReplicaSpeciesTET, clearReplicaMedia} {
			if _, err := tx.ExecContext(ctx, query); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		if err := replaceRows(ctx, tx, bundle.EntityCollections); err != nil {
			return err
		}

		return setReplicaWatermark(ctx, tx, bundle.Version)
	})
}

func (r *replicaRepository) ApplyIncremental(ctx context.Context, changes models.IncrementalChanges) error {
	return r.withinTx(ctx, "replicaRepository.ApplyIncremental", func(tx *sql.Tx) error {
		current, err := watermark(ctx, tx)
		if err != nil {
			return err
		}

		for _, id := range changes.Deleted.Species {
			for _, query := range []string{deleteReplicaSpeciesEN, deleteReplicaSpeciesTET} {
				if _, err := tx.ExecContext(ctx, query, id); err != nil {
					return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
				}
			}
		}
		for _, id := range changes.Deleted.Media {
			if _, err := tx.ExecContext(ctx, deleteReplicaMedia, id); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		if err := replaceRows(ctx, tx, changes.EntityCollections); err != nil {
			return err
		}

		// the watermark never moves backwards
		if changes.LatestVersion <= current {
			return nil
		}
		return setReplicaWatermark(ctx, tx, changes.LatestVersion)
	})
}

func (r *replicaRepository) Snapshot(ctx context.Context) (models.Bundle, error) {
	version, err := r.Watermark(ctx)
	if err != nil {
		return models.Bundle{}, err
	}

	bundle := models.Bundle{Version: version, EntityCollections: models.NewEntityCollections()}

	for _, locale := range models.Locales {
		rows, err := r.selectAll(ctx, speciesTables[locale], speciesColumns, "species_id")
		if err != nil {
			return models.Bundle{}, err
		}
		species, err := scanSpeciesRows(ctx, rows, "replicaRepository.Snapshot")
		rows.Close()
		if err != nil {
			return models.Bundle{}, err
		}
		bundle.SetSpecies(locale, species)
	}

	rows, err := r.selectAll(ctx, "media", mediaColumns, "media_id")
	if err != nil {
		return models.Bundle{}, err
	}
	defer rows.Close()

	bundle.Media, err = scanMediaRows(ctx, rows, "replicaRepository.Snapshot")
	if err != nil {
		return models.Bundle{}, err
	}

	return bundle, nil
}

func (r *replicaRepository) selectAll(ctx context.Context, table string, columns []string, orderBy string) (*sql.Rows, error) {
	query, args, err := buildReplicaSelectQuery(table, columns, orderBy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "replicaRepository.selectAll").
			Str("table", table).
			Msg("failed to query replica")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rows, nil
}

func (r *replicaRepository) withinTx(ctx context.Context, fn string, apply func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := apply(tx); err != nil {
		_ = tx.Rollback()
		log.Err(err).Str("func", fn).Msg("replica update rolled back")
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", fn).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func replaceRows(ctx context.Context, tx *sql.Tx, c models.EntityCollections) error {
	for _, locale := range models.Locales {
		for _, s := range c.Species(locale) {
			query, args, err := buildReplaceSpeciesQuery(speciesTables[locale], s)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
	}

	for _, m := range c.Media {
		query, args, err := buildReplaceMediaQuery(m)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func setReplicaWatermark(ctx context.Context, tx *sql.Tx, version int64) error {
	if _, err := tx.ExecContext(ctx, setWatermark, version, time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
