package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestQueue(t *testing.T) (CaseChangeQueue, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewCaseChangeQueue(&DB{DB: db, logger: logger.Nop()}), mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func TestCaseChangeQueue_Enqueue(t *testing.T) {
	queue, mock := newTestQueue(t)

	change := models.QueuedChange{
		CaseID:        4,
		CreatedAt:     time.Now(),
		SyncUUID:      "sync-1",
		SchemaVersion: models.SchemaV1,
		Data:          `{}`,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cases (id) VALUES (?) ON CONFLICT(id) DO NOTHING")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO case_changes")).
		WithArgs(int64(4), sqlmock.AnyArg(), "sync-1", int64(1), `{}`).
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectCommit()

	id, err := queue.Enqueue(testContext(), change)

	require.NoError(t, err)
	assert.Equal(t, int64(31), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseChangeQueue_Enqueue_InsertError(t *testing.T) {
	queue, mock := newTestQueue(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO cases").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO case_changes").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := queue.Enqueue(testContext(), models.QueuedChange{CaseID: 1, SyncUUID: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseChangeQueue_Enqueue_BeginError(t *testing.T) {
	queue, mock := newTestQueue(t)

	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	_, err := queue.Enqueue(testContext(), models.QueuedChange{CaseID: 1})

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestCaseChangeQueue_PendingCaseIDs(t *testing.T) {
	queue, mock := newTestQueue(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT case_id FROM case_changes ORDER BY case_id")).
		WillReturnRows(sqlmock.NewRows([]string{"case_id"}).AddRow(int64(2)).AddRow(int64(8)))

	ids, err := queue.PendingCaseIDs(testContext())

	require.NoError(t, err)
	assert.Equal(t, []int64{2, 8}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseChangeQueue_PendingCaseIDs_QueryError(t *testing.T) {
	queue, mock := newTestQueue(t)

	mock.ExpectQuery("SELECT DISTINCT case_id").WillReturnError(errors.New("boom"))

	_, err := queue.PendingCaseIDs(testContext())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCaseChangeQueue_Changes(t *testing.T) {
	queue, mock := newTestQueue(t)

	first := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta("FROM case_changes WHERE case_id = ? ORDER BY created_at, id")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(queuedChangeColumns).
			AddRow(int64(10), int64(3), first, "u-10", 1, `{"a":1}`, false, 0).
			AddRow(int64(11), int64(3), second, "u-11", 2, `{"a":2}`, true, 2))

	changes, err := queue.Changes(testContext(), 3)

	require.NoError(t, err)
	require.Len(t, changes, 2)
	assert.Equal(t, models.QueuedChange{
		ID: 10, CaseID: 3, CreatedAt: first, SyncUUID: "u-10",
		SchemaVersion: models.SchemaV1, Data: `{"a":1}`,
	}, changes[0])
	assert.Equal(t, models.SchemaVersion(2), changes[1].SchemaVersion)
	assert.True(t, changes[1].IsPartiallySynced)
	assert.Equal(t, 2, changes[1].SaveAttempt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseChangeQueue_SyncState(t *testing.T) {
	queue, mock := newTestQueue(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT server_id FROM cases WHERE id = ?")).
		WithArgs(int64(6)).
		WillReturnRows(sqlmock.NewRows([]string{"server_id"}).AddRow(int64(600)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT entity, local_id, server_id FROM case_id_maps")).
		WithArgs(int64(6)).
		WillReturnRows(sqlmock.NewRows([]string{"entity", "local_id", "server_id"}).
			AddRow(entityFlag, int64(1), int64(101)).
			AddRow(entityNote, int64(2), int64(202)).
			AddRow(entityWorkType, int64(3), int64(303)).
			AddRow("legacy", int64(4), int64(404)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM case_changes")).
		WithArgs(int64(6), 0, true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	state, err := queue.SyncState(testContext(), 6)

	require.NoError(t, err)
	assert.Equal(t, models.CaseSyncState{
		CaseID:           6,
		ServerCaseID:     600,
		FlagIDs:          models.IDMap{1: 101},
		NoteIDs:          models.IDMap{2: 202},
		WorkTypeIDs:      models.IDMap{3: 303},
		HasPriorUnsynced: true,
	}, state)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseChangeQueue_SyncState_UnknownCase(t *testing.T) {
	queue, mock := newTestQueue(t)

	mock.ExpectQuery("SELECT server_id FROM cases").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("FROM case_id_maps").
		WillReturnRows(sqlmock.NewRows([]string{"entity", "local_id", "server_id"}))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	state, err := queue.SyncState(testContext(), 9)

	require.NoError(t, err)
	assert.Zero(t, state.ServerCaseID)
	assert.False(t, state.HasPriorUnsynced)
	assert.NotNil(t, state.FlagIDs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseChangeQueue_ApplySyncResult(t *testing.T) {
	queue, mock := newTestQueue(t)

	result := models.SyncResult{
		ChangeResults: []models.ChangeResult{
			{ChangeID: 1, Outcome: models.OutcomeFailed},
			{ChangeID: 2, Outcome: models.OutcomeFullySynced},
			{ChangeID: 3, Outcome: models.OutcomePartiallySynced, Failures: []models.SyncFailure{
				{Kind: models.FailureNoteAdd, LocalID: 5, Err: errors.New("bad gateway")},
			}},
			{ChangeID: 4, Outcome: models.OutcomeFailed, Failures: []models.SyncFailure{
				{Kind: models.FailureConnectivity, Err: errors.New("offline")},
			}},
		},
		IDs: models.SyncIDs{
			ServerCaseID: 77,
			FlagIDs:      models.IDMap{1: 11},
			NoteIDs:      models.IDMap{},
			WorkTypeIDs:  models.IDMap{},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM case_changes WHERE id IN (?,?)")).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE case_changes SET is_partially_synced = ?, save_attempt = save_attempt + 1, last_error = ? WHERE id = ?")).
		WithArgs(true, "note_add local_id=5: bad gateway", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE case_changes SET save_attempt = save_attempt + 1, last_error = ? WHERE id = ?")).
		WithArgs("no_connectivity: offline", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cases (id,server_id)")).
		WithArgs(int64(5), int64(77)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO case_id_maps")).
		WithArgs(int64(5), entityFlag, int64(1), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := queue.ApplySyncResult(testContext(), 5, result)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseChangeQueue_ApplySyncResult_NothingSettled(t *testing.T) {
	queue, mock := newTestQueue(t)

	result := models.SyncResult{
		ChangeResults: []models.ChangeResult{{ChangeID: 1, Outcome: models.OutcomeFailed}},
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE case_changes").
		WithArgs("", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, queue.ApplySyncResult(testContext(), 1, result))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseChangeQueue_ApplySyncResult_RollsBackOnError(t *testing.T) {
	queue, mock := newTestQueue(t)

	result := models.SyncResult{
		ChangeResults: []models.ChangeResult{{ChangeID: 1, Outcome: models.OutcomeFullySynced}},
		IDs:           models.SyncIDs{ServerCaseID: 9},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM case_changes").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO cases").WillReturnError(errors.New("readonly database"))
	mock.ExpectRollback()

	err := queue.ApplySyncResult(testContext(), 1, result)

	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func Test_dbFilePath(t *testing.T) {
	assert.Equal(t, "cases.db", dbFilePath("file:cases.db?_foreign_keys=on"))
	assert.Equal(t, "/tmp/a.db", dbFilePath("/tmp/a.db"))
}
