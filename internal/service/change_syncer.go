package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/internal/utils"
	"github.com/MKhiriev/go-case-sync/models"
)

// SyncRequest carries the queued changes of one case and the state persisted
// by earlier runs.
type SyncRequest struct {
	CaseID  int64
	State   models.CaseSyncState
	Changes []models.QueuedChange
}

// ChangeSyncer decodes stored changes and drives a ChangeProcessor over them.
type ChangeSyncer struct {
	remote   CaseRemote
	operator ChangeSetOperator
}

func NewChangeSyncer(remote CaseRemote, operator ChangeSetOperator) *ChangeSyncer {
	return &ChangeSyncer{
		remote:   remote,
		operator: operator,
	}
}

// Sync pushes the changes of req in order. Every change is decoded before
// anything is pushed, so a change of an unsupported schema version fails
// the whole request without a remote call.
func (s *ChangeSyncer) Sync(ctx context.Context, req SyncRequest) (models.SyncResult, error) {
	log := logger.FromContext(ctx)

	if len(req.Changes) == 0 {
		return models.SyncResult{IDs: req.State.IDs()}, nil
	}

	decoded := make([]models.QueuedCaseChange, 0, len(req.Changes))
	for _, queued := range req.Changes {
		change, err := DecodeQueuedChange(queued)
		if err != nil {
			log.Err(err).
				Str("func", "ChangeSyncer.Sync").
				Int64("case_id", req.CaseID).
				Int64("change_id", queued.ID).
				Int("schema_version", int(queued.SchemaVersion)).
				Msg("cannot decode queued change")
			return models.SyncResult{}, err
		}
		decoded = append(decoded, change)
	}

	processor := NewChangeProcessor(s.remote, s.operator, req.State)
	return processor.Process(ctx, decoded[0], decoded), nil
}

// DecodeQueuedChange decodes the data of queued according to its schema
// version.
func DecodeQueuedChange(queued models.QueuedChange) (models.QueuedCaseChange, error) {
	var change models.CaseChange

	switch queued.SchemaVersion {
	case models.SchemaV1:
		if err := json.Unmarshal([]byte(queued.Data), &change); err != nil {
			return models.QueuedCaseChange{}, fmt.Errorf("%w: change %d: %w", ErrMalformedChange, queued.ID, err)
		}
	default:
		return models.QueuedCaseChange{}, fmt.Errorf("%w: change %d has %s", ErrUnsupportedSchemaVersion, queued.ID, queued.SchemaVersion)
	}

	return models.QueuedCaseChange{
		ID:                queued.ID,
		CreatedAt:         queued.CreatedAt,
		SyncUUID:          queued.SyncUUID,
		IsPartiallySynced: queued.IsPartiallySynced,
		Change:            change,
	}, nil
}

// EncodeCaseChange serializes change at the current schema version and tags
// it with a fresh idempotency token.
func EncodeCaseChange(caseID int64, createdAt time.Time, change models.CaseChange, uuids *utils.UUIDGenerator) (models.QueuedChange, error) {
	data, err := json.Marshal(change)
	if err != nil {
		return models.QueuedChange{}, fmt.Errorf("%w: %w", ErrMalformedChange, err)
	}

	return models.QueuedChange{
		CaseID:        caseID,
		CreatedAt:     createdAt,
		SyncUUID:      uuids.Generate(),
		SchemaVersion: models.CurrentSchemaVersion,
		Data:          string(data),
	}, nil
}
