package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/models"
)

type caseChangeQueue struct {
	*DB
}

// NewCaseChangeQueue returns the SQLite backed change queue.
func NewCaseChangeQueue(db *DB) CaseChangeQueue {
	return &caseChangeQueue{DB: db}
}

func (q *caseChangeQueue) Enqueue(ctx context.Context, change models.QueuedChange) (int64, error) {
	log := logger.FromContext(ctx)

	ensureQuery, ensureArgs, err := buildEnsureCaseQuery(change.CaseID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, err := buildInsertChangeQuery(change)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := q.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "caseChangeQueue.Enqueue").
			Int64("case_id", change.CaseID).
			Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, ensureQuery, ensureArgs...); err != nil {
		log.Err(err).
			Str("func", "caseChangeQueue.Enqueue").
			Int64("case_id", change.CaseID).
			Msg("failed to register case")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	res, err := tx.ExecContext(ctx, insertQuery, insertArgs...)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("func", "caseChangeQueue.Enqueue").
				Int64("case_id", change.CaseID).
				Str("sync_uuid", change.SyncUUID).
				Msg("change already queued")
			return 0, ErrDuplicateChange
		}
		log.Err(err).
			Str("func", "caseChangeQueue.Enqueue").
			Int64("case_id", change.CaseID).
			Msg("failed to insert case change")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		log.Error().
			Str("func", "caseChangeQueue.Enqueue").
			Int64("case_id", change.CaseID).
			Msg("no row id returned for inserted change")
		return 0, ErrChangeNotSaved
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "caseChangeQueue.Enqueue").
			Int64("case_id", change.CaseID).
			Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().
		Str("func", "caseChangeQueue.Enqueue").
		Int64("case_id", change.CaseID).
		Int64("change_id", id).
		Msg("case change queued")

	return id, nil
}

func (q *caseChangeQueue) PendingCaseIDs(ctx context.Context) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPendingCaseIDsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "caseChangeQueue.PendingCaseIDs").Msg("failed to query pending cases")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			log.Err(err).Str("func", "caseChangeQueue.PendingCaseIDs").Msg("failed to scan case id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func (q *caseChangeQueue) Changes(ctx context.Context, caseID int64) ([]models.QueuedChange, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectChangesQuery(caseID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "caseChangeQueue.Changes").
			Int64("case_id", caseID).
			Msg("failed to query case changes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	changes := make([]models.QueuedChange, 0)
	for rows.Next() {
		var (
			c       models.QueuedChange
			version int
		)
		scanErr := rows.Scan(
			&c.ID,
			&c.CaseID,
			&c.CreatedAt,
			&c.SyncUUID,
			&version,
			&c.Data,
			&c.IsPartiallySynced,
			&c.SaveAttempt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "caseChangeQueue.Changes").
				Int64("case_id", caseID).
				Msg("failed to scan case change row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		c.SchemaVersion = models.SchemaVersion(version)
		changes = append(changes, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return changes, nil
}

func (q *caseChangeQueue) SyncState(ctx context.Context, caseID int64) (models.CaseSyncState, error) {
	log := logger.FromContext(ctx)

	state := models.CaseSyncState{
		CaseID:      caseID,
		FlagIDs:     models.IDMap{},
		NoteIDs:     models.IDMap{},
		WorkTypeIDs: models.IDMap{},
	}

	serverIDQuery, serverIDArgs, err := buildSelectServerIDQuery(caseID)
	if err != nil {
		return models.CaseSyncState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	err = q.DB.QueryRowContext(ctx, serverIDQuery, serverIDArgs...).Scan(&state.ServerCaseID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).
			Str("func", "caseChangeQueue.SyncState").
			Int64("case_id", caseID).
			Msg("failed to read server id")
		return models.CaseSyncState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = q.loadIDMaps(ctx, &state); err != nil {
		return models.CaseSyncState{}, err
	}

	countQuery, countArgs, err := buildCountUnsyncedQuery(caseID)
	if err != nil {
		return models.CaseSyncState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	var unsynced int
	if err = q.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&unsynced); err != nil {
		log.Err(err).
			Str("func", "caseChangeQueue.SyncState").
			Int64("case_id", caseID).
			Msg("failed to count unsynced changes")
		return models.CaseSyncState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	state.HasPriorUnsynced = unsynced > 0

	return state, nil
}

func (q *caseChangeQueue) loadIDMaps(ctx context.Context, state *models.CaseSyncState) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectIDMapsQuery(state.CaseID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "caseChangeQueue.loadIDMaps").
			Int64("case_id", state.CaseID).
			Msg("failed to query id maps")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entity            string
			localID, serverID int64
		)
		if err = rows.Scan(&entity, &localID, &serverID); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		switch entity {
		case entityFlag:
			state.FlagIDs[localID] = serverID
		case entityNote:
			state.NoteIDs[localID] = serverID
		case entityWorkType:
			state.WorkTypeIDs[localID] = serverID
		default:
			log.Warn().
				Str("func", "caseChangeQueue.loadIDMaps").
				Str("entity", entity).
				Msg("unknown id map entity skipped")
		}
	}

	return rows.Err()
}

func (q *caseChangeQueue) ApplySyncResult(ctx context.Context, caseID int64, result models.SyncResult) error {
	log := logger.FromContext(ctx)

	tx, err := q.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "caseChangeQueue.ApplySyncResult").
			Int64("case_id", caseID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if settled := result.SettledChangeIDs(); len(settled) > 0 {
		query, args, buildErr := buildDeleteChangesQuery(settled)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "caseChangeQueue.ApplySyncResult").
				Int64("case_id", caseID).
				Int("settled", len(settled)).
				Msg("failed to delete settled changes")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	for _, r := range result.UnsettledResults() {
		query, args, buildErr := buildMarkAttemptQuery(r.ChangeID, r.Outcome == models.OutcomePartiallySynced, failureText(r.Failures))
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "caseChangeQueue.ApplySyncResult").
				Int64("case_id", caseID).
				Int64("change_id", r.ChangeID).
				Msg("failed to record sync attempt")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if result.IDs.ServerCaseID > 0 {
		query, args, buildErr := buildUpsertServerIDQuery(caseID, result.IDs.ServerCaseID)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "caseChangeQueue.ApplySyncResult").
				Int64("case_id", caseID).
				Msg("failed to save server id")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	query, args, err := buildUpsertIDMapsQuery(caseID, result.IDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if query != "" {
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "caseChangeQueue.ApplySyncResult").
				Int64("case_id", caseID).
				Msg("failed to save id maps")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "caseChangeQueue.ApplySyncResult").
			Int64("case_id", caseID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

func failureText(failures []models.SyncFailure) string {
	parts := make([]string, 0, len(failures))
	for _, f := range failures {
		parts = append(parts, f.Summary())
	}
	return strings.Join(parts, "; ")
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
