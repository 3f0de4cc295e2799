package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/species-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ChangelogRepository is the version ledger. Entries are only ever appended.
type ChangelogRepository interface {
	// Append records one mutation and assigns it the next global version.
	// It must run in the same transaction as the entity write it describes.
	Append(ctx context.Context, entityType models.EntityType, entityID int64, operation models.Operation) (models.ChangeEntry, error)
	// LockCounter locks the version counter row until the transaction ends.
	// Concurrent writers queue here, so whatever they read afterwards
	// reflects every earlier committed write. ErrCounterMissing when the row
	// is absent.
	LockCounter(ctx context.Context) error
	// QuerySince returns every entry with version > since, ordered by change_id.
	QuerySince(ctx context.Context, since int64) ([]models.ChangeEntry, error)
	// CountSince returns the number of entries with version > since.
	CountSince(ctx context.Context, since int64) (int64, error)
	// MaxVersionSince returns the highest version > since, or 0 when there is none.
	MaxVersionSince(ctx context.Context, since int64) (int64, error)
	// MaxVersion returns the highest version in the ledger, or 0 when it is empty.
	MaxVersion(ctx context.Context) (int64, error)
	// Page returns at most limit entries with version > since after skipping
	// offset of them, ordered by change_id.
	Page(ctx context.Context, since int64, limit, offset uint64) ([]models.ChangeEntry, error)
}

// SpeciesRepository reads and writes the locale variants of species rows.
type SpeciesRepository interface {
	ListAll(ctx context.Context, locale models.Locale) ([]models.Species, error)
	ListByIDs(ctx context.Context, locale models.Locale, ids []int64) ([]models.Species, error)
	// Upsert replaces the whole row of one locale variant.
	Upsert(ctx context.Context, locale models.Locale, row models.Species) (models.Species, error)
	// Delete removes every locale variant; ErrSpeciesNotFound when none existed.
	Delete(ctx context.Context, speciesID int64) error
	// Exists reports whether any locale variant of speciesID exists.
	Exists(ctx context.Context, speciesID int64) (bool, error)
}

// MediaRepository reads and writes media metadata rows.
type MediaRepository interface {
	ListAll(ctx context.Context) ([]models.Media, error)
	ListByIDs(ctx context.Context, ids []int64) ([]models.Media, error)
	Create(ctx context.Context, media models.Media) (models.Media, error)
	Update(ctx context.Context, media models.Media) (models.Media, error)
	Delete(ctx context.Context, mediaID int64) error
}

// Transactor runs fn against repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, opts *sql.TxOptions, fn func(repos *Repositories) error) error
}

// BundleCache stores assembled bundles keyed by their version.
type BundleCache interface {
	// Get returns the bundle cached for version; ok is false on a miss.
	Get(ctx context.Context, version int64) (bundle models.Bundle, ok bool, err error)
	Set(ctx context.Context, bundle models.Bundle) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Querier is the subset of *sql.DB and *sql.Tx the repositories need.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
