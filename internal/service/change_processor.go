// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-case-sync/internal/adapter"
	"github.com/MKhiriev/go-case-sync/internal/casediff"
	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/models"
)

type cacheState int

const (
	cacheUnfetched cacheState = iota
	cacheFresh
	cacheStale
)

// cachedCase is the remote case as last seen by a processing run. It is
// handed from change to change by value.
type cachedCase struct {
	state  cacheState
	entity models.ServerCase
}

func freshCase(entity models.ServerCase) cachedCase {
	return cachedCase{state: cacheFresh, entity: entity}
}

func (c cachedCase) invalidate() cachedCase {
	if c.state == cacheUnfetched {
		return c
	}
	return cachedCase{state: cacheStale}
}

// apply returns c with fn run against a copy of the cached entity. Only a
// fresh cache is updated.
func (c cachedCase) apply(fn func(entity *models.ServerCase)) cachedCase {
	if c.state != cacheFresh {
		return c
	}
	entity := c.entity.Clone()
	fn(&entity)
	return freshCase(entity)
}

// ChangeProcessor pushes the queued changes of one case in order. A
// processor is single use and must not be shared between goroutines.
type ChangeProcessor struct {
	remote   CaseRemote
	operator ChangeSetOperator

	serverID    int64
	flagIDs     models.IDMap
	noteIDs     models.IDMap
	workTypeIDs models.IDMap

	// hasPrior is set while an earlier change is failed or partially synced.
	hasPrior bool

	// lastApplied is the change snapshot of the last fully synced change.
	lastApplied *models.CaseSnapshot
	// lastCore is the core of the last change whose core push succeeded.
	lastCore *models.CoreSnapshot
}

// NewChangeProcessor builds a processor seeded with the persisted state of a
// case. The id maps of state are copied.
func NewChangeProcessor(remote CaseRemote, operator ChangeSetOperator, state models.CaseSyncState) *ChangeProcessor {
	return &ChangeProcessor{
		remote:      remote,
		operator:    operator,
		serverID:    state.ServerCaseID,
		flagIDs:     state.FlagIDs.Clone(),
		noteIDs:     state.NoteIDs.Clone(),
		workTypeIDs: state.WorkTypeIDs.Clone(),
		hasPrior:    state.HasPriorUnsynced,
	}
}

// Process pushes changes in order and returns the outcome of every change it
// attempted. The start snapshot of starting seeds the rebase of changes
// following a change that did not fully sync. Processing stops after a
// change aborted on lost connectivity or an invalid session.
func (p *ChangeProcessor) Process(ctx context.Context, starting models.QueuedCaseChange, changes []models.QueuedCaseChange) models.SyncResult {
	log := logger.FromContext(ctx)

	if starting.Change.Start != nil {
		start := *starting.Change.Start
		p.lastApplied = &start
	}

	cache := cachedCase{}
	results := make([]models.ChangeResult, 0, len(changes))
	for _, queued := range changes {
		var result models.ChangeResult
		result, cache = p.processChange(ctx, queued, cache)
		results = append(results, result)

		log.Debug().
			Str("func", "ChangeProcessor.Process").
			Int64("change_id", queued.ID).
			Int64("server_id", p.serverID).
			Str("outcome", result.Outcome.String()).
			Int("failures", len(result.Failures)).
			Msg("change processed")

		if result.IsAborted() {
			log.Warn().
				Str("func", "ChangeProcessor.Process").
				Int64("change_id", queued.ID).
				Int("skipped", len(changes)-len(results)).
				Msg("sync aborted, remaining changes left queued")
			break
		}
	}

	return models.SyncResult{
		ChangeResults: results,
		IDs:           p.ids(),
	}
}

func (p *ChangeProcessor) ids() models.SyncIDs {
	return models.SyncIDs{
		ServerCaseID: p.serverID,
		FlagIDs:      p.flagIDs.Clone(),
		NoteIDs:      p.noteIDs.Clone(),
		WorkTypeIDs:  p.workTypeIDs.Clone(),
	}
}

func (p *ChangeProcessor) processChange(ctx context.Context, queued models.QueuedCaseChange, cache cachedCase) (models.ChangeResult, cachedCase) {
	if queued.IsPartiallySynced {
		cache = cache.invalidate()
	}
	run := &changeRun{ctx: ctx, remote: p.remote, cache: cache}

	changeSet, err := p.changeSetFor(run, queued)
	if err != nil {
		run.recordSetupError(err)
		p.hasPrior = true
		return run.result(queued.ID, models.OutcomeFailed), run.cache
	}

	p.push(run, queued, changeSet)

	var outcome models.SyncOutcome
	switch {
	case run.coreFailed || (run.aborted && run.writes == 0):
		outcome = models.OutcomeFailed
		p.hasPrior = true
	case len(run.failures) == 0:
		outcome = models.OutcomeFullySynced
		applied := queued.Change.Change
		p.lastApplied = &applied
		p.hasPrior = false
	default:
		outcome = models.OutcomePartiallySynced
		run.cache = run.cache.invalidate()
		p.hasPrior = true
	}

	return run.result(queued.ID, outcome), run.cache
}

// changeSetFor picks the start snapshot of queued and computes its writes.
func (p *ChangeProcessor) changeSetFor(run *changeRun, queued models.QueuedCaseChange) (models.ChangeSet, error) {
	start := queued.Change.Start
	if p.hasPrior {
		// with nothing fully applied yet the remote only holds what the
		// creation push wrote, so a nil start rebases on the empty case
		start = p.lastApplied
	}
	change := queued.Change.Change

	if p.serverID <= 0 && (start == nil || p.hasPrior) {
		return p.operator.CreationSet(change), nil
	}

	if start == nil {
		// the case reached the remote in an earlier attempt
		core := change.Core
		if p.lastCore != nil {
			core = *p.lastCore
		}
		empty := models.CaseSnapshot{Core: core}.WithoutSubEntities()
		start = &empty
	}

	if p.serverID <= 0 {
		return models.ChangeSet{}, ErrCaseNotFound
	}

	server, err := run.serverCase(p.serverID)
	if err != nil {
		return models.ChangeSet{}, err
	}

	return p.operator.ChangeSet(server, *start, change, p.flagIDs, p.noteIDs, p.workTypeIDs), nil
}

// push writes changeSet in order: core, favorite, flag adds, flag deletes,
// notes, claims, unclaims, work type statuses, work type deletes.
func (p *ChangeProcessor) push(run *changeRun, queued models.QueuedCaseChange, changeSet models.ChangeSet) {
	changedAt := queued.CreatedAt

	if changeSet.Core != nil {
		if !p.pushCore(run, queued, *changeSet.Core, changeSet.WorkTypes.Add) {
			return
		}
	}

	switch changeSet.Favorite {
	case models.FavoriteSet:
		if run.call(models.SyncFailure{Kind: models.FailureFavorite}, func(ctx context.Context) error {
			return p.remote.SetFavorite(ctx, changedAt, p.serverID)
		}) {
			// the new favorite id is only known to the remote
			run.cache = run.cache.invalidate()
		}
	case models.FavoriteClear:
		if favorite := run.cache.entity.Favorite; run.cache.state == cacheFresh && favorite != nil {
			if run.call(models.SyncFailure{Kind: models.FailureFavorite, ServerID: favorite.ID}, func(ctx context.Context) error {
				return p.remote.ClearFavorite(ctx, changedAt, p.serverID, favorite.ID)
			}) {
				run.cache.entity.Favorite = nil
			}
		}
	}

	for _, flag := range changeSet.Flags.Add {
		payload := flag.Flag
		payload.ID = 0

		var added models.ServerFlag
		ok := run.call(models.SyncFailure{Kind: models.FailureFlagAdd, LocalID: flag.LocalID}, func(ctx context.Context) error {
			var err error
			added, err = p.remote.AddFlag(ctx, changedAt, p.serverID, payload)
			return err
		})
		if !ok {
			continue
		}
		if flag.LocalID != 0 {
			p.flagIDs[flag.LocalID] = added.ID
		}
		run.cache = run.cache.apply(func(entity *models.ServerCase) {
			entity.Flags = append(entity.Flags, added)
		})
	}

	for _, flagID := range changeSet.Flags.DeleteIDs {
		if !run.call(models.SyncFailure{Kind: models.FailureFlagDelete, ServerID: flagID}, func(ctx context.Context) error {
			return p.remote.DeleteFlag(ctx, changedAt, p.serverID, flagID)
		}) {
			continue
		}
		p.flagIDs.DropServerID(flagID)
		run.cache = run.cache.apply(func(entity *models.ServerCase) {
			entity.Flags = slices.DeleteFunc(entity.Flags, func(f models.ServerFlag) bool { return f.ID == flagID })
		})
	}

	for _, note := range changeSet.NewNotes {
		payload := note.Note
		payload.ID = 0

		var added models.ServerNote
		ok := run.call(models.SyncFailure{Kind: models.FailureNoteAdd, LocalID: note.LocalID}, func(ctx context.Context) error {
			var err error
			added, err = p.remote.AddNote(ctx, changedAt, p.serverID, payload)
			return err
		})
		if !ok {
			continue
		}
		if note.LocalID != 0 {
			p.noteIDs[note.LocalID] = added.ID
		}
		run.cache = run.cache.apply(func(entity *models.ServerCase) {
			entity.Notes = append(entity.Notes, added)
		})
	}

	p.pushWorkTypes(run, changedAt, changeSet.WorkTypes)
}

func (p *ChangeProcessor) pushCore(run *changeRun, queued models.QueuedCaseChange, push models.CorePush, added []models.WorkTypeSnapshot) bool {
	if p.serverID > 0 {
		push.ID = p.serverID
	}

	var entity models.ServerCase
	ok := run.call(models.SyncFailure{Kind: models.FailureCore}, func(ctx context.Context) error {
		var err error
		entity, err = p.remote.PushCore(ctx, queued.CreatedAt, queued.SyncUUID, push)
		return err
	})
	if !ok {
		run.coreFailed = true
		return false
	}

	p.serverID = entity.ID
	run.cache = freshCase(entity)

	// work types created by the push are only known by type key
	created, _ := casediff.DistinctNewestWorkTypes(entity.WorkTypes, entity.KeyWorkType)
	byKey := make(map[string]int64, len(created))
	for _, wt := range created {
		byKey[wt.WorkType] = wt.ID
	}
	for _, wt := range added {
		if id, found := byKey[wt.WorkType.WorkType]; found && wt.LocalID != 0 {
			p.workTypeIDs[wt.LocalID] = id
		}
	}

	core := queued.Change.Change.Core
	p.lastCore = &core
	return true
}

func (p *ChangeProcessor) pushWorkTypes(run *changeRun, changedAt time.Time, workTypes models.WorkTypeChanges) {
	for _, c := range workTypes.Changes {
		if c.LocalID != 0 && c.ServerID > 0 {
			p.workTypeIDs[c.LocalID] = c.ServerID
		}
	}

	// an empty key list means "every work type" to the remote
	if keys := workTypes.ClaimKeys(); len(keys) > 0 {
		if run.call(models.SyncFailure{Kind: models.FailureWorkTypeClaim, TypeKeys: keys}, func(ctx context.Context) error {
			return p.remote.ClaimWorkTypes(ctx, changedAt, p.serverID, keys)
		}) {
			// the claiming organization is only known to the remote
			run.cache = run.cache.invalidate()
		}
	}
	if keys := workTypes.UnclaimKeys(); len(keys) > 0 {
		if run.call(models.SyncFailure{Kind: models.FailureWorkTypeUnclaim, TypeKeys: keys}, func(ctx context.Context) error {
			return p.remote.UnclaimWorkTypes(ctx, changedAt, p.serverID, keys)
		}) {
			run.cache = run.cache.apply(func(entity *models.ServerCase) {
				for i := range entity.WorkTypes {
					if slices.Contains(keys, entity.WorkTypes[i].WorkType) {
						entity.WorkTypes[i].ClaimedBy = nil
					}
				}
			})
		}
	}

	for _, c := range workTypes.StatusChanges() {
		if run.call(models.SyncFailure{Kind: models.FailureWorkTypeStatus, LocalID: c.LocalID, ServerID: c.ServerID}, func(ctx context.Context) error {
			_, err := p.remote.SetWorkTypeStatus(ctx, changedAt, c.ServerID, c.WorkType.Status)
			return err
		}) {
			run.cache = run.cache.apply(func(entity *models.ServerCase) {
				for i := range entity.WorkTypes {
					if entity.WorkTypes[i].ID == c.ServerID {
						entity.WorkTypes[i].Status = c.WorkType.Status
					}
				}
			})
		}
	}

	for _, workTypeID := range workTypes.DeleteIDs {
		if !run.call(models.SyncFailure{Kind: models.FailureWorkTypeDelete, ServerID: workTypeID}, func(ctx context.Context) error {
			return p.remote.DeleteWorkType(ctx, changedAt, workTypeID)
		}) {
			continue
		}
		p.workTypeIDs.DropServerID(workTypeID)
		run.cache = run.cache.apply(func(entity *models.ServerCase) {
			entity.WorkTypes = slices.DeleteFunc(entity.WorkTypes, func(wt models.ServerWorkType) bool { return wt.ID == workTypeID })
			if entity.KeyWorkType != nil && entity.KeyWorkType.ID == workTypeID {
				entity.KeyWorkType = nil
			}
		})
	}
}

// changeRun tracks the remote calls of a single change.
type changeRun struct {
	ctx    context.Context
	remote CaseRemote
	cache  cachedCase

	calls      int
	writes     int
	aborted    bool
	coreFailed bool
	failures   []models.SyncFailure
}

// ready reports whether the next remote call may go out. Every call but the
// first of a change is preceded by a session and connectivity check.
func (r *changeRun) ready() bool {
	if r.aborted {
		return false
	}
	r.calls++
	if r.calls == 1 {
		return true
	}
	if err := r.conditionsError(); err != nil {
		r.abort(err)
		return false
	}
	return true
}

func (r *changeRun) conditionsError() error {
	if !r.remote.IsSessionTokenValid() {
		return ErrInvalidSession
	}
	if r.remote.IsOffline(r.ctx) {
		return ErrNoConnectivity
	}
	return nil
}

func (r *changeRun) abort(err error) {
	kind := models.FailureConnectivity
	if errors.Is(err, ErrInvalidSession) {
		kind = models.FailureSession
	}
	r.failures = append(r.failures, models.SyncFailure{Kind: kind, Err: err})
	r.aborted = true
}

// abortCause returns the abort error a failed call stands for, or nil when
// the failure concerns only the resource written.
func (r *changeRun) abortCause(err error) error {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrInvalidSession, err)
	case errors.Is(err, adapter.ErrNoConnection),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrNoConnectivity, err)
	}
	return r.conditionsError()
}

// call runs fn as one remote write. A failure is recorded as f and aborts
// the change when it was caused by connectivity or the session.
func (r *changeRun) call(f models.SyncFailure, fn func(ctx context.Context) error) bool {
	if !r.ready() {
		return false
	}

	err := fn(r.ctx)
	if err == nil {
		r.writes++
		return true
	}

	f.Err = err
	r.failures = append(r.failures, f)
	if cause := r.abortCause(err); cause != nil {
		r.abort(cause)
	}
	return false
}

// serverCase returns the cached remote case, fetching it when not fresh.
func (r *changeRun) serverCase(serverID int64) (models.ServerCase, error) {
	if r.cache.state == cacheFresh {
		return r.cache.entity, nil
	}
	if !r.ready() {
		return models.ServerCase{}, errRunAborted
	}

	entity, err := r.remote.FetchCase(r.ctx, serverID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.ServerCase{}, fmt.Errorf("%w: %w", ErrCaseNotFound, err)
		}
		return models.ServerCase{}, err
	}

	r.cache = freshCase(entity)
	return entity, nil
}

var errRunAborted = errors.New("change run aborted")

// recordSetupError records why no change set could be computed.
func (r *changeRun) recordSetupError(err error) {
	switch {
	case errors.Is(err, errRunAborted):
		// abort failure already recorded
	case errors.Is(err, ErrCaseNotFound):
		r.failures = append(r.failures, models.SyncFailure{Kind: models.FailureCaseNotFound, Err: err})
	default:
		r.failures = append(r.failures, models.SyncFailure{Kind: models.FailureCore, Err: err})
		if cause := r.abortCause(err); cause != nil {
			r.abort(cause)
		}
	}
}

func (r *changeRun) result(changeID int64, outcome models.SyncOutcome) models.ChangeResult {
	return models.ChangeResult{
		ChangeID: changeID,
		Outcome:  outcome,
		Failures: r.failures,
	}
}
