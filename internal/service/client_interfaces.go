package service

import (
	"context"
	"time"

	"github.com/MKhiriev/species-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncService defines the client-side contract for bringing the local
// replica up to date with the server.
type ClientSyncService interface {
	// Sync runs one round of the protocol: a staleness check against the
	// replica watermark followed by an incremental fetch, a bundle fetch or
	// nothing. A replica that has never been synced always takes the bundle.
	// Returns the decision that was carried out.
	Sync(ctx context.Context) (models.SyncDecision, error)
}

// ClientSyncJob defines the contract for a background sync worker that
// periodically calls Sync.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. After a failed
	// round the wait doubles, up to eight intervals, and a successful round
	// resets it. Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
