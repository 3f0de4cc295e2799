package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/models"
)

// redisBundleCache keeps serialized bundles under bundle:v<version>. A bundle
// for a given version never changes, so entries only expire by TTL.
type redisBundleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBundleCache returns a [BundleCache] backed by client.
func NewRedisBundleCache(client *redis.Client, ttl time.Duration) BundleCache {
	if ttl < 0 {
		ttl = 0
	}
	return &redisBundleCache{client: client, ttl: ttl}
}

func (c *redisBundleCache) Get(ctx context.Context, version int64) (models.Bundle, bool, error) {
	data, err := c.client.Get(ctx, bundleCacheKey(version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Bundle{}, false, nil
	}
	if err != nil {
		return models.Bundle{}, false, fmt.Errorf("error reading bundle from cache: %w", err)
	}

	var bundle models.Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		// a corrupt entry is dropped and treated as a miss
		_ = c.client.Del(ctx, bundleCacheKey(version)).Err()
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "redisBundleCache.Get").
			Int64("version", version).
			Msg("dropped undecodable bundle cache entry")
		return models.Bundle{}, false, nil
	}

	return bundle, true, nil
}

func (c *redisBundleCache) Set(ctx context.Context, bundle models.Bundle) error {
	data, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("error encoding bundle: %w", err)
	}

	if err := c.client.Set(ctx, bundleCacheKey(bundle.Version), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("error writing bundle to cache: %w", err)
	}

	return nil
}

// noopBundleCache is used when no Redis address is configured.
type noopBundleCache struct{}

func (noopBundleCache) Get(context.Context, int64) (models.Bundle, bool, error) {
	return models.Bundle{}, false, nil
}

func (noopBundleCache) Set(context.Context, models.Bundle) error { return nil }

func bundleCacheKey(version int64) string {
	return "bundle:v" + strconv.FormatInt(version, 10)
}
