package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/species-sync/internal/config"
	"github.com/MKhiriev/species-sync/internal/logger"
	"github.com/MKhiriev/species-sync/internal/service"
	"github.com/MKhiriev/species-sync/internal/workers"
)

var errNoServices = errors.New("client services are not provided")

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	once     bool

	logger *logger.Logger
}

// NewApp wires the client. With cfg.Once set, Run performs a single sync and
// returns instead of polling.
func NewApp(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) (Client, error) {
	if services == nil || services.SyncService == nil || services.SyncJob == nil {
		return nil, errNoServices
	}

	return &App{
		services: services,
		workers:  workers.NewWorkers(workers.NewSyncWorker(services.SyncJob, cfg.SyncInterval)),
		once:     cfg.Once,
		logger:   logger,
	}, nil
}

// Run syncs until SIGTERM, SIGINT or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	decision, err := a.services.SyncService.Sync(ctx)
	if err != nil {
		if a.once {
			return err
		}
		// the worker retries on its next tick
		a.logger.Warn().Err(err).Msg("initial sync failed")
	} else {
		a.logger.Info().Stringer("decision", decision).Msg("initial sync finished")
	}

	if a.once {
		return nil
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	<-ctx.Done()
	a.logger.Info().Msg("client stopped")

	return nil
}
