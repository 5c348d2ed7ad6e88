package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-case-sync/internal/logger"
)

// DefaultSyncInterval is used when the job is started without an interval.
const DefaultSyncInterval = 5 * time.Minute

// pendingSyncer is the part of CaseSyncService the job drives.
type pendingSyncer interface {
	SyncPending(ctx context.Context) error
}

type syncJob struct {
	syncService pendingSyncer

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a job that calls syncService.SyncPending on a ticker.
// The job is idle until Start is called.
func NewSyncJob(syncService pendingSyncer) SyncJob {
	return &syncJob{syncService: syncService}
}

// Start stops any previously running loop, then launches a goroutine calling
// SyncPending every interval. A non-positive interval defaults to
// DefaultSyncInterval. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		log := logger.FromContext(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.syncService.SyncPending(jobCtx); err != nil {
					log.Err(err).Str("func", "syncJob.Start").Msg("sync pass failed")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited. It
// is a no-op when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
