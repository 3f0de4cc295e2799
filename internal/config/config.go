// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// species-sync server, the sync client and the token tool. Each binary reads
// only the groups it needs.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the reported application version and the
	// optional log file path.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// optional Redis bundle cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Sync holds the changelog protocol policy values.
	Sync Sync `envPrefix:"SYNC_"`

	// Adapter holds the sync client's view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the sync client's background polling settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the database DSN. The server expects a PostgreSQL DSN, the
	// client a SQLite file path.
	DB DB `envPrefix:"DB_"`

	// Cache holds the Redis bundle cache settings. Caching is disabled when
	// the address is empty.
	Cache Cache `envPrefix:"CACHE_"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey is the HMAC key used to verify (and, in the token tool,
	// sign) editor tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of minted tokens.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// TokenEditorID is the editor id the token tool puts into minted tokens.
	TokenEditorID int64 `env:"TOKEN_EDITOR_ID"`

	// Version is the application version reported by the health endpoint.
	Version string `env:"VERSION"`

	// LogFile, when set, redirects the client's logs to a file.
	LogFile string `env:"LOG_FILE"`
}

// Server holds network settings of the HTTP server.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds the database connection string.
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

// Cache holds the Redis connection used for bundle caching.
type Cache struct {
	RedisAddress  string        `env:"REDIS_ADDRESS"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"`
	TTL           time.Duration `env:"TTL"`
}

// Sync holds the policy knobs of the changelog protocol.
type Sync struct {
	// BundleThreshold is the number of pending changes above which a client
	// is told to re-fetch the full bundle instead of syncing incrementally.
	// Must be positive. Zero is indistinguishable from "unset" once env,
	// flags and JSON are merged, so it means the default of 20.
	BundleThreshold int64 `env:"BUNDLE_THRESHOLD"`

	// DefaultPerPage is used when a paged ledger request omits per_page.
	DefaultPerPage int `env:"DEFAULT_PER_PAGE"`

	// MaxPerPage caps per_page on paged ledger requests. It may be lowered
	// but never raised above DefaultMaxPerPage.
	MaxPerPage int `env:"MAX_PER_PAGE"`
}

// Adapter holds the sync client's connection to the server.
type Adapter struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings of the sync client.
type Workers struct {
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// Once makes the client sync a single time and exit.
	Once bool `env:"ONCE"`
}

// GetStructuredConfig assembles the configuration from environment
// variables, command-line flags and an optional JSON file, applies defaults
// and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
