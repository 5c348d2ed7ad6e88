package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/internal/service"
)

// syncWorker drives the periodic sync job for the lifetime of the worker.
type syncWorker struct {
	job      service.SyncJob
	interval time.Duration

	logger *logger.Logger
}

func NewSyncWorker(job service.SyncJob, interval time.Duration, logger *logger.Logger) Worker {
	return &syncWorker{
		job:      job,
		interval: interval,
		logger:   logger,
	}
}

func (w *syncWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("sync worker started")

	w.job.Start(w.logger.WithContext(ctx), w.interval)
	<-ctx.Done()
	w.job.Stop()

	w.logger.Info().Msg("sync worker stopped")
}
