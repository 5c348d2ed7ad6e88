package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-case-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/change_queue_mock.go -package=mock

// CaseChangeQueue is the local, durable queue of case changes waiting to be
// pushed to the remote authority, together with the id mappings learned by
// earlier sync runs.
type CaseChangeQueue interface {
	// Enqueue stores a change and returns its queue id.
	Enqueue(ctx context.Context, change models.QueuedChange) (int64, error)
	// PendingCaseIDs lists the cases having at least one queued change.
	PendingCaseIDs(ctx context.Context) ([]int64, error)
	// Changes returns the queued changes of a case ordered by creation time.
	Changes(ctx context.Context, caseID int64) ([]models.QueuedChange, error)
	// SyncState loads the server id and id maps of a case.
	SyncState(ctx context.Context, caseID int64) (models.CaseSyncState, error)
	// ApplySyncResult removes settled changes, records failures of the
	// remaining ones and saves the learned ids in one transaction.
	ApplySyncResult(ctx context.Context, caseID int64, result models.SyncResult) error
}

// CaseAuthority is the case store of the development remote authority. Every
// method returns copies; nothing handed out aliases stored state.
type CaseAuthority interface {
	// GetCase returns the case with its sub-entities.
	GetCase(ctx context.Context, caseID int64) (models.ServerCase, error)
	// SaveCore creates (push.ID == 0) or updates a case. A non-empty
	// idempotencyKey already seen with the same fingerprint returns the
	// current case untouched and replayed set.
	SaveCore(ctx context.Context, idempotencyKey, fingerprint string, changedAt time.Time, push models.CorePush) (saved models.ServerCase, replayed bool, err error)
	SetFavorite(ctx context.Context, caseID int64) (models.ServerFavorite, error)
	ClearFavorite(ctx context.Context, caseID, favoriteID int64) error
	AddFlag(ctx context.Context, caseID int64, changedAt time.Time, flag models.Flag) (models.ServerFlag, error)
	DeleteFlag(ctx context.Context, caseID, flagID int64) error
	AddNote(ctx context.Context, caseID int64, note models.Note) (models.ServerNote, error)
	SetWorkTypeStatus(ctx context.Context, workTypeID int64, status string) (models.ServerWorkType, error)
	DeleteWorkType(ctx context.Context, workTypeID int64) error
	// SetClaim sets the claiming organization of the listed work types, or
	// of all of them when typeKeys is empty. A nil orgID releases them.
	SetClaim(ctx context.Context, caseID int64, typeKeys []string, orgID *int64) error
}
