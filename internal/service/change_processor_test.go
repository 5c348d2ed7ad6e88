// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-case-sync/internal/adapter"
	"github.com/MKhiriev/go-case-sync/internal/casediff"
	"github.com/MKhiriev/go-case-sync/models"
)

var editedAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func baseSnapshot() models.CaseSnapshot {
	return models.CaseSnapshot{
		Core: models.CoreSnapshot{
			ID:         1,
			Address:    "12 Elm St",
			City:       "Tulsa",
			County:     "Tulsa",
			Name:       "Dana",
			Phone1:     "555-0100",
			State:      "OK",
			IncidentID: 40,
			Latitude:   36.15,
			Longitude:  -95.99,
		},
	}
}

// serverFor returns the remote copy of s stored under id.
func serverFor(id int64, s models.CaseSnapshot) models.ServerCase {
	return models.ServerCase{
		ID:       id,
		Address:  s.Core.Address,
		City:     s.Core.City,
		County:   s.Core.County,
		Name:     s.Core.Name,
		Phone1:   s.Core.Phone1,
		State:    s.Core.State,
		Incident: s.Core.IncidentID,
		Location: models.NewLocation(s.Core.Latitude, s.Core.Longitude),
	}
}

func queuedChange(id int64, start *models.CaseSnapshot, change models.CaseSnapshot) models.QueuedCaseChange {
	return models.QueuedCaseChange{
		ID:        id,
		CreatedAt: editedAt.Add(time.Duration(id) * time.Minute),
		SyncUUID:  fmt.Sprintf("uuid-%d", id),
		Change:    models.CaseChange{Start: start, Change: change},
	}
}

func process(remote *fakeRemote, state models.CaseSyncState, changes ...models.QueuedCaseChange) models.SyncResult {
	p := NewChangeProcessor(remote, casediff.NewOperator(), state)
	return p.Process(context.Background(), changes[0], changes)
}

func failureKinds(failures []models.SyncFailure) []models.FailureKind {
	kinds := make([]models.FailureKind, 0, len(failures))
	for _, f := range failures {
		kinds = append(kinds, f.Kind)
	}
	return kinds
}

func withFlags(s models.CaseSnapshot, reasons ...string) models.CaseSnapshot {
	s.Flags = nil
	for i, reason := range reasons {
		s.Flags = append(s.Flags, models.FlagSnapshot{
			LocalID: int64(i + 1),
			Flag:    models.Flag{ReasonT: reason, CreatedAt: editedAt},
		})
	}
	return s
}

func TestChangeProcessor_CreationPushesEverything(t *testing.T) {
	remote := newFakeRemote()

	change := baseSnapshot()
	change.Core.IsAssignedToOrgMember = true
	change.Core.KeyWorkType = &models.WorkType{WorkType: "trees", Status: "open_unassigned"}
	change.Flags = []models.FlagSnapshot{
		{LocalID: 1, Flag: models.Flag{ReasonT: "flag.worker_ask_for_help", CreatedAt: editedAt}},
	}
	change.Notes = []models.NoteSnapshot{
		{LocalID: 2, Note: models.Note{Content: "Roof tarped", CreatedAt: editedAt}},
		{LocalID: 4, Note: models.Note{Content: "   ", CreatedAt: editedAt}},
	}
	change.WorkTypes = []models.WorkTypeSnapshot{
		{LocalID: 3, WorkType: models.WorkType{WorkType: "trees", Status: "open_unassigned", OrgClaim: ptr(int64(7))}},
	}

	result := process(remote, models.CaseSyncState{CaseID: 1}, queuedChange(1, nil, change))

	require.Len(t, result.ChangeResults, 1)
	assert.Equal(t, models.OutcomeFullySynced, result.ChangeResults[0].Outcome)
	assert.Empty(t, result.ChangeResults[0].Failures)
	assert.Equal(t, []string{"PushCore", "SetFavorite", "AddFlag", "AddNote", "ClaimWorkTypes"}, remote.callLog())
	assert.Equal(t, [][]string{{"trees"}}, remote.claimed)
	assert.Equal(t, []string{"uuid-1"}, remote.pushKeys)
	// every call but the first checks the session and connectivity
	assert.Equal(t, 8, remote.conditionsN)

	server := remote.serverCase(result.IDs.ServerCaseID)
	require.Len(t, server.Flags, 1)
	require.Len(t, server.Notes, 1)
	require.Len(t, server.WorkTypes, 1)
	assert.NotNil(t, server.Favorite)
	assert.Equal(t, ptr(int64(7)), server.WorkTypes[0].ClaimedBy)

	assert.Equal(t, models.IDMap{1: server.Flags[0].ID}, result.IDs.FlagIDs)
	assert.Equal(t, models.IDMap{2: server.Notes[0].ID}, result.IDs.NoteIDs)
	assert.Equal(t, models.IDMap{3: server.WorkTypes[0].ID}, result.IDs.WorkTypeIDs)
	assert.Equal(t, []int64{1}, result.SettledChangeIDs())
}

func TestChangeProcessor_PartialSyncResumesAgainstRefetchedCase(t *testing.T) {
	remote := newFakeRemote()
	remote.failNext("AddFlag", nil, fmt.Errorf("%w: flag rejected", adapter.ErrInternalServerError))

	created := withFlags(baseSnapshot(), "flag.a", "flag.b")
	renamed := created
	renamed.Core.Name = "Dana Smith"

	result := process(remote, models.CaseSyncState{CaseID: 1},
		queuedChange(1, nil, created),
		queuedChange(2, &created, renamed),
	)

	require.Len(t, result.ChangeResults, 2)

	first := result.ChangeResults[0]
	assert.Equal(t, models.OutcomePartiallySynced, first.Outcome)
	require.Len(t, first.Failures, 1)
	assert.Equal(t, models.FailureFlagAdd, first.Failures[0].Kind)
	assert.Equal(t, int64(2), first.Failures[0].LocalID)

	assert.Equal(t, models.OutcomeFullySynced, result.ChangeResults[1].Outcome)
	assert.Equal(t, []string{
		"PushCore", "AddFlag", "AddFlag",
		"FetchCase", "PushCore", "AddFlag",
	}, remote.callLog())

	server := remote.serverCase(result.IDs.ServerCaseID)
	assert.Equal(t, "Dana Smith", server.Name)
	require.Len(t, server.Flags, 2)
	assert.Equal(t, "flag.a", server.Flags[0].ReasonT)
	assert.Equal(t, "flag.b", server.Flags[1].ReasonT)
	assert.Equal(t, models.IDMap{1: server.Flags[0].ID, 2: server.Flags[1].ID}, result.IDs.FlagIDs)
	assert.Equal(t, []int64{1, 2}, result.SettledChangeIDs())
}

func TestChangeProcessor_PartialCreationRetriesFavoriteAndClaim(t *testing.T) {
	remote := newFakeRemote()
	remote.failNext("SetFavorite", fmt.Errorf("%w: favorite rejected", adapter.ErrInternalServerError))
	remote.failNext("ClaimWorkTypes", fmt.Errorf("%w: claim rejected", adapter.ErrInternalServerError))

	created := baseSnapshot()
	created.Core.IsAssignedToOrgMember = true
	created.WorkTypes = []models.WorkTypeSnapshot{
		{LocalID: 3, WorkType: models.WorkType{WorkType: "trees", Status: "open_unassigned", OrgClaim: ptr(int64(7))}},
	}
	renamed := created
	renamed.Core.Name = "Dana Smith"

	result := process(remote, models.CaseSyncState{CaseID: 1},
		queuedChange(1, nil, created),
		queuedChange(2, &created, renamed),
	)

	require.Len(t, result.ChangeResults, 2)
	first := result.ChangeResults[0]
	assert.Equal(t, models.OutcomePartiallySynced, first.Outcome)
	assert.Equal(t, []models.FailureKind{models.FailureFavorite, models.FailureWorkTypeClaim}, failureKinds(first.Failures))
	assert.Equal(t, models.OutcomeFullySynced, result.ChangeResults[1].Outcome)

	assert.Equal(t, 2, remote.count("SetFavorite"))
	assert.Equal(t, 2, remote.count("ClaimWorkTypes"))

	server := remote.serverCase(result.IDs.ServerCaseID)
	assert.Equal(t, "Dana Smith", server.Name)
	assert.NotNil(t, server.Favorite)
	require.Len(t, server.WorkTypes, 1)
	assert.Equal(t, ptr(int64(7)), server.WorkTypes[0].ClaimedBy)
	assert.Equal(t, []int64{1, 2}, result.SettledChangeIDs())
}

func TestChangeProcessor_FlagDeletedThenReadded(t *testing.T) {
	remote := newFakeRemote()
	withWind := withFlags(baseSnapshot(), "flag.wind")
	stored := serverFor(500, withWind)
	stored.Flags = []models.ServerFlag{{ID: 501, ReasonT: "flag.wind", CreatedAt: editedAt}}
	remote.seed(stored)

	removed := baseSnapshot()
	readded := baseSnapshot()
	readded.Flags = []models.FlagSnapshot{
		{LocalID: 2, Flag: models.Flag{ReasonT: "flag.wind", CreatedAt: editedAt.Add(time.Hour)}},
	}

	result := process(remote, models.CaseSyncState{CaseID: 1, ServerCaseID: 500, FlagIDs: models.IDMap{1: 501}},
		queuedChange(1, &withWind, removed),
		queuedChange(2, &removed, readded),
	)

	require.Len(t, result.ChangeResults, 2)
	assert.True(t, result.IsFullySynced())
	assert.Equal(t, []string{"FetchCase", "DeleteFlag", "AddFlag"}, remote.callLog())

	server := remote.serverCase(500)
	require.Len(t, server.Flags, 1)
	assert.Equal(t, "flag.wind", server.Flags[0].ReasonT)
	assert.NotEqual(t, int64(501), server.Flags[0].ID)
	assert.Equal(t, models.IDMap{2: server.Flags[0].ID}, result.IDs.FlagIDs)
}

func TestChangeProcessor_WorkTypeDeletedThenReadded(t *testing.T) {
	remote := newFakeRemote()
	withTrees := baseSnapshot()
	withTrees.WorkTypes = []models.WorkTypeSnapshot{
		{LocalID: 3, WorkType: models.WorkType{WorkType: "trees", Status: "open_unassigned"}},
	}
	stored := serverFor(500, withTrees)
	stored.WorkTypes = []models.ServerWorkType{{ID: 601, WorkType: "trees", Status: "open_unassigned"}}
	remote.seed(stored)

	removed := baseSnapshot()
	readded := baseSnapshot()
	readded.WorkTypes = []models.WorkTypeSnapshot{
		{LocalID: 4, WorkType: models.WorkType{WorkType: "trees", Status: "open_unassigned"}},
	}

	result := process(remote, models.CaseSyncState{CaseID: 1, ServerCaseID: 500, WorkTypeIDs: models.IDMap{3: 601}},
		queuedChange(1, &withTrees, removed),
		queuedChange(2, &removed, readded),
	)

	require.Len(t, result.ChangeResults, 2)
	assert.True(t, result.IsFullySynced())
	assert.Equal(t, []string{"FetchCase", "DeleteWorkType", "PushCore"}, remote.callLog())

	server := remote.serverCase(500)
	require.Len(t, server.WorkTypes, 1)
	assert.NotEqual(t, int64(601), server.WorkTypes[0].ID)
	assert.Equal(t, models.IDMap{4: server.WorkTypes[0].ID}, result.IDs.WorkTypeIDs)
}

func TestChangeProcessor_ResumedCreationPushesOnlyMissingEntities(t *testing.T) {
	remote := newFakeRemote()
	stored := serverFor(500, baseSnapshot())
	stored.Flags = []models.ServerFlag{{ID: 501, ReasonT: "flag.a", CreatedAt: editedAt}}
	stored.Notes = []models.ServerNote{{ID: 502, Note: "Roof tarped", CreatedAt: editedAt.Add(time.Hour)}}
	remote.seed(stored)

	change := withFlags(baseSnapshot(), "flag.a", "flag.b")
	change.Notes = []models.NoteSnapshot{
		{LocalID: 3, Note: models.Note{Content: "roof tarped ", CreatedAt: editedAt}},
	}
	queued := queuedChange(1, nil, change)
	queued.IsPartiallySynced = true

	result := process(remote, models.CaseSyncState{
		CaseID:           1,
		ServerCaseID:     500,
		FlagIDs:          models.IDMap{1: 501},
		HasPriorUnsynced: true,
	}, queued)

	require.Len(t, result.ChangeResults, 1)
	assert.Equal(t, models.OutcomeFullySynced, result.ChangeResults[0].Outcome)
	assert.Equal(t, []string{"FetchCase", "AddFlag"}, remote.callLog())

	server := remote.serverCase(500)
	assert.Len(t, server.Flags, 2)
	assert.Len(t, server.Notes, 1)
	assert.Equal(t, int64(500), result.IDs.ServerCaseID)
}

func TestChangeProcessor_ConnectivityLossStopsQueue(t *testing.T) {
	remote := newFakeRemote()
	remote.onCall = func(f *fakeRemote, method string) {
		if method == "PushCore" {
			f.offline = true
		}
	}

	created := withFlags(baseSnapshot(), "flag.a")
	renamed := created
	renamed.Core.Name = "Dana Smith"

	result := process(remote, models.CaseSyncState{CaseID: 1},
		queuedChange(1, nil, created),
		queuedChange(2, &created, renamed),
	)

	require.Len(t, result.ChangeResults, 1)
	first := result.ChangeResults[0]
	assert.Equal(t, models.OutcomePartiallySynced, first.Outcome)
	assert.Equal(t, []models.FailureKind{models.FailureConnectivity}, failureKinds(first.Failures))
	assert.True(t, first.IsAborted())
	assert.Equal(t, []string{"PushCore"}, remote.callLog())
	assert.Empty(t, result.SettledChangeIDs())
	assert.Positive(t, result.IDs.ServerCaseID)
}

func TestChangeProcessor_CoreWithoutConnectionFails(t *testing.T) {
	remote := newFakeRemote()
	remote.failNext("PushCore", fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrNoConnection))

	created := baseSnapshot()
	renamed := created
	renamed.Core.Name = "Dana Smith"

	result := process(remote, models.CaseSyncState{CaseID: 1},
		queuedChange(1, nil, created),
		queuedChange(2, &created, renamed),
	)

	require.Len(t, result.ChangeResults, 1)
	assert.Equal(t, models.OutcomeFailed, result.ChangeResults[0].Outcome)
	assert.Equal(t,
		[]models.FailureKind{models.FailureCore, models.FailureConnectivity},
		failureKinds(result.ChangeResults[0].Failures),
	)
	assert.Zero(t, result.IDs.ServerCaseID)
}

func TestChangeProcessor_InvalidSessionAborts(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(f *fakeRemote)
		outcome models.SyncOutcome
		kinds   []models.FailureKind
		calls   []string
	}{
		{
			name: "token expires after core push",
			prepare: func(f *fakeRemote) {
				f.onCall = func(f *fakeRemote, method string) {
					if method == "PushCore" {
						f.sessionInvalid = true
					}
				}
			},
			outcome: models.OutcomePartiallySynced,
			kinds:   []models.FailureKind{models.FailureSession},
			calls:   []string{"PushCore"},
		},
		{
			name: "remote rejects the token",
			prepare: func(f *fakeRemote) {
				f.failNext("PushCore", fmt.Errorf("%w: token expired", adapter.ErrUnauthorized))
			},
			outcome: models.OutcomeFailed,
			kinds:   []models.FailureKind{models.FailureCore, models.FailureSession},
			calls:   []string{"PushCore"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := newFakeRemote()
			tt.prepare(remote)

			created := withFlags(baseSnapshot(), "flag.a")
			result := process(remote, models.CaseSyncState{CaseID: 1}, queuedChange(1, nil, created))

			require.Len(t, result.ChangeResults, 1)
			assert.Equal(t, tt.outcome, result.ChangeResults[0].Outcome)
			assert.Equal(t, tt.kinds, failureKinds(result.ChangeResults[0].Failures))
			assert.True(t, result.ChangeResults[0].IsAborted())
			assert.Equal(t, tt.calls, remote.callLog())
		})
	}
}

func TestChangeProcessor_RejectedCreationIsRetriedByNextChange(t *testing.T) {
	remote := newFakeRemote()
	remote.failNext("PushCore", fmt.Errorf("%w: incident is closed", adapter.ErrBadRequest))

	created := baseSnapshot()
	renamed := created
	renamed.Core.Name = "Dana Smith"

	result := process(remote, models.CaseSyncState{CaseID: 1},
		queuedChange(1, nil, created),
		queuedChange(2, &created, renamed),
	)

	require.Len(t, result.ChangeResults, 2)
	assert.Equal(t, models.OutcomeFailed, result.ChangeResults[0].Outcome)
	assert.False(t, result.ChangeResults[0].IsAborted())
	assert.Equal(t, models.OutcomeFullySynced, result.ChangeResults[1].Outcome)
	assert.Equal(t, []string{"PushCore", "PushCore"}, remote.callLog())
	assert.Equal(t, []string{"uuid-2"}, remote.pushKeys)

	server := remote.serverCase(result.IDs.ServerCaseID)
	assert.Equal(t, "Dana Smith", server.Name)
	assert.Equal(t, []int64{1, 2}, result.SettledChangeIDs())
}

func TestChangeProcessor_RebasesOnLastAppliedAfterFailure(t *testing.T) {
	remote := newFakeRemote()
	remote.seed(serverFor(500, baseSnapshot()))
	remote.failNext("PushCore", nil, fmt.Errorf("%w: validation failed", adapter.ErrBadRequest))

	start := baseSnapshot()
	first := start
	first.Core.Name = "Dana B"
	second := first
	second.Core.City = "Broken Arrow"
	third := second
	third.Core.Name = "Dana C"

	result := process(remote, models.CaseSyncState{CaseID: 1, ServerCaseID: 500},
		queuedChange(1, &start, first),
		queuedChange(2, &first, second),
		queuedChange(3, &second, third),
	)

	require.Len(t, result.ChangeResults, 3)
	assert.Equal(t, models.OutcomeFullySynced, result.ChangeResults[0].Outcome)
	assert.Equal(t, models.OutcomeFailed, result.ChangeResults[1].Outcome)
	assert.Equal(t, models.OutcomeFullySynced, result.ChangeResults[2].Outcome)
	assert.Equal(t, []int64{1, 2, 3}, result.SettledChangeIDs())

	server := remote.serverCase(500)
	assert.Equal(t, "Dana C", server.Name)
	assert.Equal(t, "Broken Arrow", server.City)
	assert.Equal(t, 1, remote.count("FetchCase"))
}

func TestChangeProcessor_CaseNotFound(t *testing.T) {
	t.Run("case never reached the remote", func(t *testing.T) {
		remote := newFakeRemote()
		start := baseSnapshot()
		renamed := start
		renamed.Core.Name = "Dana Smith"

		result := process(remote, models.CaseSyncState{CaseID: 1}, queuedChange(1, &start, renamed))

		require.Len(t, result.ChangeResults, 1)
		assert.Equal(t, models.OutcomeFailed, result.ChangeResults[0].Outcome)
		assert.Equal(t, []models.FailureKind{models.FailureCaseNotFound}, failureKinds(result.ChangeResults[0].Failures))
		assert.ErrorIs(t, result.ChangeResults[0].Failures[0].Err, ErrCaseNotFound)
		assert.Empty(t, remote.callLog())
	})

	t.Run("case deleted on the remote", func(t *testing.T) {
		remote := newFakeRemote()
		start := baseSnapshot()
		renamed := start
		renamed.Core.Name = "Dana Smith"

		result := process(remote, models.CaseSyncState{CaseID: 1, ServerCaseID: 900}, queuedChange(1, &start, renamed))

		require.Len(t, result.ChangeResults, 1)
		assert.Equal(t, models.OutcomeFailed, result.ChangeResults[0].Outcome)
		assert.Equal(t, []models.FailureKind{models.FailureCaseNotFound}, failureKinds(result.ChangeResults[0].Failures))
		assert.False(t, result.ChangeResults[0].IsAborted())
		assert.Equal(t, []string{"FetchCase"}, remote.callLog())
	})
}

func TestChangeProcessor_StatusChangeSendsNoClaim(t *testing.T) {
	remote := newFakeRemote()
	stored := serverFor(500, baseSnapshot())
	stored.WorkTypes = []models.ServerWorkType{
		{ID: 510, WorkType: "trees", Status: "open_assigned", ClaimedBy: ptr(int64(7))},
	}
	remote.seed(stored)

	start := baseSnapshot()
	start.WorkTypes = []models.WorkTypeSnapshot{
		{LocalID: 3, WorkType: models.WorkType{ID: 510, WorkType: "trees", Status: "open_assigned", OrgClaim: ptr(int64(7))}},
	}
	change := start
	change.WorkTypes = []models.WorkTypeSnapshot{
		{LocalID: 3, WorkType: models.WorkType{ID: 510, WorkType: "trees", Status: "closed_completed", OrgClaim: ptr(int64(7))}},
	}

	result := process(remote, models.CaseSyncState{CaseID: 1, ServerCaseID: 500}, queuedChange(1, &start, change))

	require.Len(t, result.ChangeResults, 1)
	assert.Equal(t, models.OutcomeFullySynced, result.ChangeResults[0].Outcome)
	assert.Equal(t, []string{"FetchCase", "SetWorkTypeStatus"}, remote.callLog())
	assert.Empty(t, remote.claimed)
	assert.Empty(t, remote.unclaimed)
	assert.Equal(t, 2, remote.conditionsN)
	assert.Equal(t, "closed_completed", remote.serverCase(500).WorkTypes[0].Status)
	assert.Equal(t, models.IDMap{3: 510}, result.IDs.WorkTypeIDs)
}

func TestChangeProcessor_FailedClaimStillUnclaims(t *testing.T) {
	remote := newFakeRemote()
	stored := serverFor(500, baseSnapshot())
	stored.WorkTypes = []models.ServerWorkType{
		{ID: 510, WorkType: "trees", Status: "open_assigned", ClaimedBy: ptr(int64(7))},
		{ID: 511, WorkType: "debris", Status: "open_unassigned"},
	}
	remote.seed(stored)
	remote.failNext("ClaimWorkTypes", fmt.Errorf("%w: claimed by another organization", adapter.ErrForbidden))

	start := baseSnapshot()
	start.WorkTypes = []models.WorkTypeSnapshot{
		{LocalID: 3, WorkType: models.WorkType{ID: 510, WorkType: "trees", Status: "open_assigned", OrgClaim: ptr(int64(7))}},
		{LocalID: 4, WorkType: models.WorkType{ID: 511, WorkType: "debris", Status: "open_unassigned"}},
	}
	change := start
	change.WorkTypes = []models.WorkTypeSnapshot{
		{LocalID: 3, WorkType: models.WorkType{ID: 510, WorkType: "trees", Status: "open_assigned"}},
		{LocalID: 4, WorkType: models.WorkType{ID: 511, WorkType: "debris", Status: "open_unassigned", OrgClaim: ptr(int64(7))}},
	}

	result := process(remote, models.CaseSyncState{CaseID: 1, ServerCaseID: 500}, queuedChange(1, &start, change))

	require.Len(t, result.ChangeResults, 1)
	got := result.ChangeResults[0]
	assert.Equal(t, models.OutcomePartiallySynced, got.Outcome)
	require.Len(t, got.Failures, 1)
	assert.Equal(t, models.FailureWorkTypeClaim, got.Failures[0].Kind)
	assert.Equal(t, []string{"debris"}, got.Failures[0].TypeKeys)

	assert.Equal(t, []string{"FetchCase", "ClaimWorkTypes", "UnclaimWorkTypes"}, remote.callLog())
	assert.Equal(t, [][]string{{"trees"}}, remote.unclaimed)
	assert.Nil(t, remote.serverCase(500).WorkTypes[0].ClaimedBy)
	assert.Empty(t, result.SettledChangeIDs())
}

func TestChangeProcessor_ClearFavoriteUsesRemoteMarker(t *testing.T) {
	remote := newFakeRemote()
	stored := serverFor(500, baseSnapshot())
	stored.Favorite = &models.ServerFavorite{ID: 777}
	remote.seed(stored)

	start := baseSnapshot()
	start.Core.IsAssignedToOrgMember = true
	change := baseSnapshot()

	result := process(remote, models.CaseSyncState{CaseID: 1, ServerCaseID: 500}, queuedChange(1, &start, change))

	require.Len(t, result.ChangeResults, 1)
	assert.Equal(t, models.OutcomeFullySynced, result.ChangeResults[0].Outcome)
	assert.Equal(t, []string{"FetchCase", "ClearFavorite"}, remote.callLog())
	assert.Nil(t, remote.serverCase(500).Favorite)
}

func TestChangeProcessor_NewWorkTypeMappedAfterCorePush(t *testing.T) {
	remote := newFakeRemote()
	remote.seed(serverFor(500, baseSnapshot()))

	start := baseSnapshot()
	change := baseSnapshot()
	change.WorkTypes = []models.WorkTypeSnapshot{
		{LocalID: 3, WorkType: models.WorkType{WorkType: "muck_out", Status: "open_unassigned"}},
	}

	result := process(remote, models.CaseSyncState{CaseID: 1, ServerCaseID: 500}, queuedChange(1, &start, change))

	require.Len(t, result.ChangeResults, 1)
	assert.Equal(t, models.OutcomeFullySynced, result.ChangeResults[0].Outcome)
	assert.Equal(t, []string{"FetchCase", "PushCore"}, remote.callLog())
	assert.Empty(t, remote.claimed)

	server := remote.serverCase(500)
	require.Len(t, server.WorkTypes, 1)
	assert.Equal(t, models.IDMap{3: server.WorkTypes[0].ID}, result.IDs.WorkTypeIDs)
}

func TestChangeProcessor_DoesNotMutateState(t *testing.T) {
	remote := newFakeRemote()
	state := models.CaseSyncState{CaseID: 1, FlagIDs: models.IDMap{}}

	created := withFlags(baseSnapshot(), "flag.a")
	result := process(remote, state, queuedChange(1, nil, created))

	assert.Len(t, result.IDs.FlagIDs, 1)
	assert.Empty(t, state.FlagIDs)
}
