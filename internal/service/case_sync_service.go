package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-case-sync/internal/config"
	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/internal/store"
	"github.com/MKhiriev/go-case-sync/internal/utils"
	"github.com/MKhiriev/go-case-sync/models"
)

type caseSyncService struct {
	queue       store.CaseChangeQueue
	syncer      *ChangeSyncer
	uuids       *utils.UUIDGenerator
	concurrency int
	now         func() time.Time
}

// NewCaseSyncService wires the change queue to a syncer pushing to remote.
// concurrency bounds how many cases SyncPending processes at once.
func NewCaseSyncService(queue store.CaseChangeQueue, remote CaseRemote, operator ChangeSetOperator, concurrency int) CaseSyncService {
	if concurrency < 1 {
		concurrency = config.DefaultSyncConcurrency
	}

	return &caseSyncService{
		queue:       queue,
		syncer:      NewChangeSyncer(remote, operator),
		uuids:       utils.NewUUIDGenerator(),
		concurrency: concurrency,
		now:         time.Now,
	}
}

func (s *caseSyncService) Enqueue(ctx context.Context, caseID int64, change models.CaseChange) (int64, error) {
	log := logger.FromContext(ctx)

	if caseID <= 0 {
		return 0, fmt.Errorf("%w: case id %d", ErrInvalidCaseChange, caseID)
	}

	queued, err := EncodeCaseChange(caseID, s.now().UTC(), change, s.uuids)
	if err != nil {
		log.Err(err).Str("func", "caseSyncService.Enqueue").Int64("case_id", caseID).Msg("failed to encode change")
		return 0, err
	}

	id, err := s.queue.Enqueue(ctx, queued)
	if err != nil {
		log.Err(err).Str("func", "caseSyncService.Enqueue").Int64("case_id", caseID).Msg("failed to queue change")
		return 0, fmt.Errorf("enqueue change: %w", err)
	}

	return id, nil
}

func (s *caseSyncService) SyncCase(ctx context.Context, caseID int64) (models.SyncResult, error) {
	log := logger.FromContext(ctx).ForCase(caseID)
	ctx = log.WithContext(ctx)

	changes, err := s.queue.Changes(ctx, caseID)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("load queued changes: %w", err)
	}
	if len(changes) == 0 {
		return models.SyncResult{}, nil
	}

	state, err := s.queue.SyncState(ctx, caseID)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("load sync state: %w", err)
	}

	result, err := s.syncer.Sync(ctx, SyncRequest{
		CaseID:  caseID,
		State:   state,
		Changes: changes,
	})
	if err != nil {
		return models.SyncResult{}, err
	}

	if err = s.queue.ApplySyncResult(ctx, caseID, result); err != nil {
		log.Err(err).Str("func", "caseSyncService.SyncCase").Msg("failed to persist sync result")
		return result, fmt.Errorf("persist sync result: %w", err)
	}

	for _, failure := range result.Failures() {
		log.Warn().
			Str("func", "caseSyncService.SyncCase").
			Str("failure", failure.Summary()).
			Msg("case change not fully synced")
	}
	log.Info().
		Str("func", "caseSyncService.SyncCase").
		Int("processed", len(result.ChangeResults)).
		Int("queued", len(changes)).
		Bool("fully_synced", result.IsFullySynced()).
		Msg("case sync finished")

	return result, nil
}

func (s *caseSyncService) SyncPending(ctx context.Context) error {
	log := logger.FromContext(ctx)

	caseIDs, err := s.queue.PendingCaseIDs(ctx)
	if err != nil {
		return fmt.Errorf("load pending cases: %w", err)
	}

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for _, caseID := range caseIDs {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			_, syncErr := s.SyncCase(ctx, caseID)
			switch {
			case syncErr == nil:
				return nil
			case errors.Is(syncErr, ErrUnsupportedSchemaVersion), errors.Is(syncErr, ErrMalformedChange):
				// left queued for a build that can read it
				log.Error().
					Err(syncErr).
					Str("func", "caseSyncService.SyncPending").
					Int64("case_id", caseID).
					Msg("case skipped")
				return nil
			default:
				return fmt.Errorf("sync case %d: %w", caseID, syncErr)
			}
		})
	}

	return g.Wait()
}
