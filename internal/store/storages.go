package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/species-sync/internal/config"
	"github.com/MKhiriev/species-sync/internal/logger"
)

// Storages is everything the server's service layer persists through.
type Storages struct {
	// Repositories run each call in its own implicit transaction.
	*Repositories
	Transactor  Transactor
	BundleCache BundleCache

	closers []func() error
}

// NewStorages connects to PostgreSQL, runs migrations and, when a Redis
// address is configured, connects the bundle cache.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := &Storages{
		Repositories: newRepositories(db),
		Transactor:   db,
		BundleCache:  noopBundleCache{},
		closers:      []func() error{db.Close},
	}

	if cfg.Cache.RedisAddress != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddress,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			// the cache is optional; serve uncached rather than fail
			log.Warn().Err(err).Str("func", "NewStorages").Msg("redis unavailable, bundle cache disabled")
			client.Close()
		} else {
			s.BundleCache = NewRedisBundleCache(client, cfg.Cache.TTL)
			s.closers = append(s.closers, client.Close)
			log.Info().Str("func", "NewStorages").Msg("bundle cache enabled")
		}
	}

	return s, nil
}

// Close releases the database pool and the cache client.
func (s *Storages) Close() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
