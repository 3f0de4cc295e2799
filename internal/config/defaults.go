package config

import "time"

const (
	DefaultBundleThreshold int64 = 20
	DefaultPerPage               = 50
	DefaultMaxPerPage            = 200

	defaultRequestTimeout        = 30 * time.Second
	defaultCacheTTL              = 10 * time.Minute
	defaultAdapterRequestTimeout = 15 * time.Second
	defaultSyncInterval          = 5 * time.Minute
	defaultTokenIssuer           = "species-sync"
	defaultTokenDuration         = 24 * time.Hour
)

// applyDefaults fills zero-valued fields that have a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Sync.BundleThreshold == 0 {
		cfg.Sync.BundleThreshold = DefaultBundleThreshold
	}
	if cfg.Sync.DefaultPerPage == 0 {
		cfg.Sync.DefaultPerPage = DefaultPerPage
	}
	if cfg.Sync.MaxPerPage == 0 {
		cfg.Sync.MaxPerPage = DefaultMaxPerPage
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.Cache.TTL == 0 {
		cfg.Storage.Cache.TTL = defaultCacheTTL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterRequestTimeout
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = defaultSyncInterval
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
}
