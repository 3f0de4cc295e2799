package service

import (
	"context"

	"github.com/MKhiriev/species-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService answers the read side of the changelog protocol.
type SyncService interface {
	// CheckChanges reports whether a client at since is up to date, may sync
	// incrementally or must re-fetch the bundle.
	CheckChanges(ctx context.Context, since int64) (models.ChangeStatus, error)
	// Incremental returns the current rows of every entity changed after since.
	Incremental(ctx context.Context, since int64) (models.IncrementalChanges, error)
	// Bundle returns a full snapshot of the catalogue.
	Bundle(ctx context.Context) (models.Bundle, error)
	// Changes returns one page of raw ledger entries after since.
	Changes(ctx context.Context, since int64, page models.Pagination) (models.ChangesPage, error)
}

// CatalogueService performs catalogue writes. Every successful call appends
// exactly one ledger entry in the same transaction as the row change.
type CatalogueService interface {
	PutSpecies(ctx context.Context, species models.SpeciesUpsert) (models.ChangeEntry, error)
	DeleteSpecies(ctx context.Context, speciesID int64) (models.ChangeEntry, error)

	CreateMedia(ctx context.Context, media models.Media) (models.Media, models.ChangeEntry, error)
	UpdateMedia(ctx context.Context, media models.Media) (models.Media, models.ChangeEntry, error)
	DeleteMedia(ctx context.Context, mediaID int64) (models.ChangeEntry, error)
}

// AuthService validates editor tokens presented on write routes.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports the build version and liveness of the server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) (models.Health, error)
}
