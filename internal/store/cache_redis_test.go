package store

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/species-sync/models"
)

func newTestCache(t *testing.T, ttl time.Duration) (BundleCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisBundleCache(client, ttl), mr
}

func TestBundleCache_SetGet(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := testContext()

	bundle := models.Bundle{Version: 7, EntityCollections: models.NewEntityCollections()}
	bundle.SpeciesEN = []models.Species{{SpeciesID: 1, ScientificName: "Tectona grandis"}}

	_, ok, err := cache.Get(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, bundle))
	assert.True(t, mr.Exists("bundle:v7"))
	assert.Equal(t, time.Minute, mr.TTL("bundle:v7"))

	got, ok, err := cache.Get(ctx, 7)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, bundle, got)

	_, ok, err = cache.Get(ctx, 8)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBundleCache_CorruptEntryIsMiss(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set("bundle:v3", "{not json"))

	_, ok, err := cache.Get(testContext(), 3)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, mr.Exists("bundle:v3"))
}

func TestBundleCache_Expiry(t *testing.T) {
	cache, mr := newTestCache(t, time.Second)
	ctx := testContext()

	require.NoError(t, cache.Set(ctx, models.Bundle{Version: 2, EntityCollections: models.NewEntityCollections()}))
	mr.FastForward(2 * time.Second)

	_, ok, err := cache.Get(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBundleCache_RedisDown(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, _, err := cache.Get(testContext(), 1)
	assert.Error(t, err)
	assert.Error(t, cache.Set(testContext(), models.Bundle{Version: 1}))
}

func TestNoopBundleCache(t *testing.T) {
	var cache BundleCache = noopBundleCache{}
	require.NoError(t, cache.Set(testContext(), models.Bundle{Version: 1}))
	_, ok, err := cache.Get(testContext(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
}
