package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/models"
)

type mediaRepository struct {
	q Querier
}

func NewMediaRepository(q Querier) MediaRepository {
	return &mediaRepository{q: q}
}

func (r *mediaRepository) ListAll(ctx context.Context) ([]models.Media, error) {
	return r.list(ctx, nil)
}

func (r *mediaRepository) ListByIDs(ctx context.Context, ids []int64) ([]models.Media, error) {
	if len(ids) == 0 {
		return []models.Media{}, nil
	}
	return r.list(ctx, ids)
}

func (r *mediaRepository) list(ctx context.Context, ids []int64) ([]models.Media, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMediaQuery(ids)
	if err != nil {
		log.Err(err).Str("func", "mediaRepository.list").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "mediaRepository.list").Int("ids", len(ids)).Msg("failed to query media")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanMediaRows(ctx, rows, "mediaRepository.list")
}

func scanMediaRows(ctx context.Context, rows *sql.Rows, fn string) ([]models.Media, error) {
	result := make([]models.Media, 0, 50)
	for rows.Next() {
		var m models.Media
		var updatedAt sql.NullTime
		if err := rows.Scan(&m.MediaID, &m.SpeciesID, &m.DownloadLink, &m.StreamingLink, &m.AltText, &updatedAt); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to scan media row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if updatedAt.Valid {
			m.UpdatedAt = &updatedAt.Time
		}
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *mediaRepository) Create(ctx context.Context, media models.Media) (models.Media, error) {
	var updatedAt sql.NullTime
	err := r.q.QueryRowContext(ctx, createMedia, media.SpeciesID, media.DownloadLink, media.StreamingLink, media.AltText).
		Scan(&media.MediaID, &updatedAt)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "mediaRepository.Create").
			Int64("species_id", media.SpeciesID).
			Msg("failed to insert media")
		return models.Media{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if updatedAt.Valid {
		media.UpdatedAt = &updatedAt.Time
	}

	return media, nil
}

func (r *mediaRepository) Update(ctx context.Context, media models.Media) (models.Media, error) {
	var updatedAt sql.NullTime
	err := r.q.QueryRowContext(ctx, updateMedia, media.SpeciesID, media.DownloadLink, media.StreamingLink, media.AltText, media.MediaID).
		Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Media{}, ErrMediaNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "mediaRepository.Update").
			Int64("media_id", media.MediaID).
			Msg("failed to update media")
		return models.Media{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if updatedAt.Valid {
		media.UpdatedAt = &updatedAt.Time
	}

	return media, nil
}

func (r *mediaRepository) Delete(ctx context.Context, mediaID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.q.ExecContext(ctx, deleteMedia, mediaID)
	if err != nil {
		log.Err(err).Str("func", "mediaRepository.Delete").Int64("media_id", mediaID).Msg("failed to delete media")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMediaNotFound
	}

	return nil
}
