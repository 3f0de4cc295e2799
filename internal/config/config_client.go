package config

import (
	"fmt"
	"time"
)

// ClientAdapter is the sync client's connection to the server.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientDB points at the SQLite file holding the local replica.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client persistence settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers holds background sync settings.
type ClientWorkers struct {
	SyncInterval time.Duration
	Once         bool
}

// ClientConfig is the subset of [StructuredConfig] used by the sync client.
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	LogFile string
}

// GetClientConfig loads the shared configuration and projects the client
// view of it.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval, Once: cfg.Workers.Once},
		LogFile: cfg.App.LogFile,
	}
}
