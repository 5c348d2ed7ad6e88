package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-case-sync/internal/config"
	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/internal/service"
	"github.com/MKhiriev/go-case-sync/internal/workers"
)

type App struct {
	services *service.ClientServices
	workers  *workers.Workers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || services.CaseSyncService == nil || services.SyncJob == nil {
		return nil, fmt.Errorf("client services are not initialized")
	}

	return &App{
		services: services,
		workers:  workers.NewWorkers(workers.NewSyncWorker(services.SyncJob, cfg.SyncInterval, logger)),
		logger:   logger,
	}, nil
}

// Run makes one sync pass right away, then hands over to the background
// workers. A failed first pass is logged, not returned: the next pass
// retries it.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()
	ctx = a.logger.WithContext(ctx)

	if err := a.services.CaseSyncService.SyncPending(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("initial sync pass failed")
	}

	a.workers.Run(ctx)

	a.logger.Info().Msg("client stopped")
	return nil
}
