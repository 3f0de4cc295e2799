package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/species-sync/internal/config"
	"github.com/MKhiriev/species-sync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Replica is the SQLite copy of the catalogue and its watermark.
	Replica ReplicaRepository

	db *SQLiteDB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN, creating it if
// needed, runs the replica migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Replica: NewReplicaRepository(db),
		db:      db,
	}, nil
}

func (s *ClientStorages) Close() error {
	return s.db.Close()
}
