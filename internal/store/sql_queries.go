// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-case-sync/models"
)

// Entity names stored in case_id_maps.entity.
const (
	entityFlag     = "flag"
	entityNote     = "note"
	entityWorkType = "work_type"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var queuedChangeColumns = []string{
	"id",
	"case_id",
	"created_at",
	"sync_uuid",
	"schema_version",
	"data",
	"is_partially_synced",
	"save_attempt",
}

func buildEnsureCaseQuery(caseID int64) (string, []any, error) {
	return psql.Insert("cases").
		Columns("id").
		Values(caseID).
		Suffix("ON CONFLICT(id) DO NOTHING").
		ToSql()
}

func buildInsertChangeQuery(change models.QueuedChange) (string, []any, error) {
	return psql.Insert("case_changes").
		Columns("case_id", "created_at", "sync_uuid", "schema_version", "data").
		Values(change.CaseID, change.CreatedAt.UTC(), change.SyncUUID, int(change.SchemaVersion), change.Data).
		ToSql()
}

func buildPendingCaseIDsQuery() (string, []any, error) {
	return psql.Select("case_id").
		Distinct().
		From("case_changes").
		OrderBy("case_id").
		ToSql()
}

func buildSelectChangesQuery(caseID int64) (string, []any, error) {
	return psql.Select(queuedChangeColumns...).
		From("case_changes").
		Where(sq.Eq{"case_id": caseID}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildSelectServerIDQuery(caseID int64) (string, []any, error) {
	return psql.Select("server_id").
		From("cases").
		Where(sq.Eq{"id": caseID}).
		ToSql()
}

func buildSelectIDMapsQuery(caseID int64) (string, []any, error) {
	return psql.Select("entity", "local_id", "server_id").
		From("case_id_maps").
		Where(sq.Eq{"case_id": caseID}).
		OrderBy("entity", "local_id").
		ToSql()
}

// buildCountUnsyncedQuery counts changes an earlier run left failed or
// partially synced.
func buildCountUnsyncedQuery(caseID int64) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From("case_changes").
		Where(sq.Eq{"case_id": caseID}).
		Where(sq.Or{
			sq.Gt{"save_attempt": 0},
			sq.Eq{"is_partially_synced": true},
		}).
		ToSql()
}

func buildDeleteChangesQuery(ids []int64) (string, []any, error) {
	return psql.Delete("case_changes").
		Where(sq.Eq{"id": ids}).
		ToSql()
}

// buildMarkAttemptQuery records a failed attempt of a change. A partially
// synced change keeps the flag once set.
func buildMarkAttemptQuery(changeID int64, partial bool, lastError string) (string, []any, error) {
	q := psql.Update("case_changes")
	if partial {
		q = q.Set("is_partially_synced", true)
	}
	return q.Set("save_attempt", sq.Expr("save_attempt + 1")).
		Set("last_error", lastError).
		Where(sq.Eq{"id": changeID}).
		ToSql()
}

func buildUpsertServerIDQuery(caseID, serverID int64) (string, []any, error) {
	return psql.Insert("cases").
		Columns("id", "server_id").
		Values(caseID, serverID).
		Suffix("ON CONFLICT(id) DO UPDATE SET server_id = excluded.server_id, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

// buildUpsertIDMapsQuery writes every mapping of ids in one statement. It
// returns an empty query when there is nothing to write.
func buildUpsertIDMapsQuery(caseID int64, ids models.SyncIDs) (string, []any, error) {
	q := psql.Insert("case_id_maps").
		Columns("case_id", "entity", "local_id", "server_id").
		Suffix("ON CONFLICT(case_id, entity, local_id) DO UPDATE SET server_id = excluded.server_id")

	rows := 0
	for _, m := range []struct {
		entity string
		ids    models.IDMap
	}{
		{entityFlag, ids.FlagIDs},
		{entityNote, ids.NoteIDs},
		{entityWorkType, ids.WorkTypeIDs},
	} {
		for _, localID := range m.ids.LocalIDs() {
			q = q.Values(caseID, m.entity, localID, m.ids[localID])
			rows++
		}
	}

	if rows == 0 {
		return "", nil, nil
	}
	return q.ToSql()
}
