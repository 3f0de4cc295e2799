package store

import (
	"context"

	"github.com/MKhiriev/species-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ReplicaRepository is the client's local copy of the catalogue together
// with its sync watermark.
type ReplicaRepository interface {
	// Watermark returns the version the replica was last synced to, or
	// ErrReplicaNotInitialized before the first bundle.
	Watermark(ctx context.Context) (int64, error)
	// ApplyBundle replaces the whole replica and sets the watermark to
	// bundle.Version.
	ApplyBundle(ctx context.Context, bundle models.Bundle) error
	// ApplyIncremental upserts the changed rows, removes tombstoned ids and
	// advances the watermark to changes.LatestVersion.
	ApplyIncremental(ctx context.Context, changes models.IncrementalChanges) error
	// Snapshot returns every replica row with the watermark as Version.
	Snapshot(ctx context.Context) (models.Bundle, error)
}
