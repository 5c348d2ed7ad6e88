package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-case-sync/internal/casediff"
	"github.com/MKhiriev/go-case-sync/internal/mock"
	"github.com/MKhiriev/go-case-sync/internal/utils"
	"github.com/MKhiriev/go-case-sync/models"
)

func encodeChange(t *testing.T, id int64, change models.CaseChange) models.QueuedChange {
	t.Helper()
	queued, err := EncodeCaseChange(1, editedAt, change, utils.NewUUIDGenerator())
	require.NoError(t, err)
	queued.ID = id
	return queued
}

func TestEncodeCaseChange(t *testing.T) {
	start := baseSnapshot()
	change := models.CaseChange{Start: &start, Change: withFlags(baseSnapshot(), "flag.a"), ModelVersion: 3}

	queued := encodeChange(t, 7, change)

	assert.Equal(t, int64(1), queued.CaseID)
	assert.Equal(t, models.SchemaV1, queued.SchemaVersion)
	assert.True(t, utils.IsValidUUID(queued.SyncUUID))

	decoded, err := DecodeQueuedChange(queued)
	require.NoError(t, err)
	assert.Equal(t, int64(7), decoded.ID)
	assert.Equal(t, queued.SyncUUID, decoded.SyncUUID)
	assert.Equal(t, change, decoded.Change)
}

func TestDecodeQueuedChange_Errors(t *testing.T) {
	tests := []struct {
		name    string
		queued  models.QueuedChange
		wantErr error
	}{
		{
			name:    "unknown schema version",
			queued:  models.QueuedChange{ID: 1, SchemaVersion: 9, Data: `{}`},
			wantErr: ErrUnsupportedSchemaVersion,
		},
		{
			name:    "zero schema version",
			queued:  models.QueuedChange{ID: 1, Data: `{}`},
			wantErr: ErrUnsupportedSchemaVersion,
		},
		{
			name:    "broken json",
			queued:  models.QueuedChange{ID: 1, SchemaVersion: models.SchemaV1, Data: `{"change":`},
			wantErr: ErrMalformedChange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeQueuedChange(tt.queued)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestChangeSyncer_UnsupportedSchemaMakesNoRemoteCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockCaseAdapter(ctrl)

	good := encodeChange(t, 1, models.CaseChange{Change: baseSnapshot()})
	future := models.QueuedChange{ID: 2, CaseID: 1, SchemaVersion: 2, Data: `{"v2":true}`}

	syncer := NewChangeSyncer(remote, casediff.NewOperator())
	_, err := syncer.Sync(context.Background(), SyncRequest{
		CaseID:  1,
		Changes: []models.QueuedChange{good, future},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedSchemaVersion)
}

func TestChangeSyncer_NoChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockCaseAdapter(ctrl)

	state := models.CaseSyncState{CaseID: 1, ServerCaseID: 500, FlagIDs: models.IDMap{1: 501}}

	result, err := NewChangeSyncer(remote, casediff.NewOperator()).Sync(context.Background(), SyncRequest{CaseID: 1, State: state})

	require.NoError(t, err)
	assert.Empty(t, result.ChangeResults)
	assert.Equal(t, int64(500), result.IDs.ServerCaseID)
	assert.Equal(t, models.IDMap{1: 501}, result.IDs.FlagIDs)
}

func TestChangeSyncer_PushesDecodedChanges(t *testing.T) {
	remote := newFakeRemote()
	remote.seed(serverFor(500, baseSnapshot()))

	start := baseSnapshot()
	change := baseSnapshot()
	change.Core.Phone1 = "555-0199"

	data, err := json.Marshal(models.CaseChange{Start: &start, Change: change})
	require.NoError(t, err)

	result, err := NewChangeSyncer(remote, casediff.NewOperator()).Sync(context.Background(), SyncRequest{
		CaseID: 1,
		State:  models.CaseSyncState{CaseID: 1, ServerCaseID: 500},
		Changes: []models.QueuedChange{
			{ID: 4, CaseID: 1, CreatedAt: editedAt, SyncUUID: "uuid-4", SchemaVersion: models.SchemaV1, Data: string(data)},
		},
	})

	require.NoError(t, err)
	require.Len(t, result.ChangeResults, 1)
	assert.Equal(t, int64(4), result.ChangeResults[0].ChangeID)
	assert.True(t, result.IsFullySynced())
	assert.Equal(t, "555-0199", remote.serverCase(500).Phone1)
	assert.Equal(t, []string{"uuid-4"}, remote.pushKeys)
}
