// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/models"
)

// changelogRepository is the PostgreSQL-backed version ledger.
type changelogRepository struct {
	q Querier
}

// NewChangelogRepository constructs a [ChangelogRepository] over q, which may
// be the pool or an open transaction.
func NewChangelogRepository(q Querier) ChangelogRepository {
	return &changelogRepository{q: q}
}

// Append assigns the next version and records the entry. The returned entry
// carries the server-generated change_id, version and created_at.
func (r *changelogRepository) Append(ctx context.Context, entityType models.EntityType, entityID int64, operation models.Operation) (models.ChangeEntry, error) {
	log := logger.FromContext(ctx)

	entry := models.ChangeEntry{
		EntityType: entityType,
		EntityID:   entityID,
		Operation:  operation,
	}

	err := r.q.QueryRowContext(ctx, appendChange, string(entityType), entityID, string(operation)).
		Scan(&entry.ChangeID, &entry.Version, &entry.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Error().
			Str("func", "changelogRepository.Append").
			Msg("version counter row is missing")
		return models.ChangeEntry{}, ErrCounterMissing
	}
	if err != nil {
		log.Err(err).
			Str("func", "changelogRepository.Append").
			Str("entity_type", string(entityType)).
			Int64("entity_id", entityID).
			Str("operation", string(operation)).
			Msg("failed to append change")
		return models.ChangeEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "changelogRepository.Append").
		Int64("version", entry.Version).
		Str("entity_type", string(entityType)).
		Int64("entity_id", entityID).
		Msg("change appended")

	return entry, nil
}

func (r *changelogRepository) LockCounter(ctx context.Context) error {
	var value int64
	err := r.q.QueryRowContext(ctx, lockCounter).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		logger.FromContext(ctx).Error().
			Str("func", "changelogRepository.LockCounter").
			Msg("version counter row is missing")
		return ErrCounterMissing
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "changelogRepository.LockCounter").
			Msg("failed to lock version counter")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *changelogRepository) QuerySince(ctx context.Context, since int64) ([]models.ChangeEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.q.QueryContext(ctx, querySince, since)
	if err != nil {
		log.Err(err).
			Str("func", "changelogRepository.QuerySince").
			Int64("since_version", since).
			Msg("failed to query changes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanChanges(ctx, rows, "changelogRepository.QuerySince")
}

func (r *changelogRepository) CountSince(ctx context.Context, since int64) (int64, error) {
	return r.scalar(ctx, "changelogRepository.CountSince", countSince, since)
}

func (r *changelogRepository) MaxVersionSince(ctx context.Context, since int64) (int64, error) {
	return r.scalar(ctx, "changelogRepository.MaxVersionSince", maxVersionSince, since)
}

func (r *changelogRepository) MaxVersion(ctx context.Context) (int64, error) {
	return r.scalar(ctx, "changelogRepository.MaxVersion", maxVersion)
}

func (r *changelogRepository) Page(ctx context.Context, since int64, limit, offset uint64) ([]models.ChangeEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildChangesPageQuery(since, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "changelogRepository.Page").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "changelogRepository.Page").
			Int64("since_version", since).
			Uint64("limit", limit).
			Uint64("offset", offset).
			Msg("failed to query changes page")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanChanges(ctx, rows, "changelogRepository.Page")
}

func (r *changelogRepository) scalar(ctx context.Context, fn, query string, args ...any) (int64, error) {
	var value int64
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to execute query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, nil
}

func scanChanges(ctx context.Context, rows *sql.Rows, fn string) ([]models.ChangeEntry, error) {
	changes := make([]models.ChangeEntry, 0, 50)

	for rows.Next() {
		var c models.ChangeEntry
		if err := rows.Scan(&c.ChangeID, &c.EntityType, &c.EntityID, &c.Version, &c.Operation, &c.CreatedAt); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to scan change row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		changes = append(changes, c)
	}

	if err := rows.Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return changes, nil
}
