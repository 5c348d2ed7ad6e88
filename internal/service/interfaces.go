package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=CaseRemote,ChangeSetOperator,CaseSyncService,SyncJob

import (
	"context"
	"time"

	"github.com/MKhiriev/go-case-sync/internal/adapter"
	"github.com/MKhiriev/go-case-sync/models"
)

// CaseRemote is everything the change processor needs from the remote
// authority.
type CaseRemote interface {
	adapter.CaseReader
	adapter.CaseWriter
	adapter.SyncConditions
}

// ChangeSetOperator computes the remote writes of a queued change.
type ChangeSetOperator interface {
	// CreationSet returns the writes creating a case the remote never saw.
	CreationSet(change models.CaseSnapshot) models.ChangeSet
	// ChangeSet returns the writes applying start -> change on top of the
	// current remote case.
	ChangeSet(server models.ServerCase, start, change models.CaseSnapshot, flagIDs, noteIDs, workTypeIDs models.IDMap) models.ChangeSet
}

// CaseSyncService pushes locally queued case changes to the remote authority.
type CaseSyncService interface {
	// Enqueue stores a local edit of caseID for the next sync pass.
	Enqueue(ctx context.Context, caseID int64, change models.CaseChange) (int64, error)

	// SyncCase pushes every queued change of caseID and persists the outcome.
	SyncCase(ctx context.Context, caseID int64) (models.SyncResult, error)

	// SyncPending syncs every case with queued changes. Cases are processed
	// concurrently, each by its own processor.
	SyncPending(ctx context.Context) error
}

// SyncJob runs SyncPending periodically in the background.
type SyncJob interface {
	// Start launches the background loop, replacing a running one.
	Start(ctx context.Context, interval time.Duration)
	// Stop cancels the loop and waits for it to exit.
	Stop()
}

// AuthService issues and verifies the session tokens of the development
// server. The token subject is the organization id of the caller.
type AuthService interface {
	CreateToken(ctx context.Context, orgID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CaseAuthorityService validates and applies writes made against the
// development server.
type CaseAuthorityService interface {
	GetCase(ctx context.Context, caseID int64) (models.ServerCase, error)

	// PushCore creates or updates the core fields of a case. A request
	// repeating an idempotency key with the same fingerprint returns the case
	// without writing again and reports replayed == true.
	PushCore(ctx context.Context, idempotencyKey, fingerprint string, request models.CorePushRequest) (models.ServerCase, bool, error)

	SetFavorite(ctx context.Context, caseID int64) (models.ServerFavorite, error)
	ClearFavorite(ctx context.Context, caseID, favoriteID int64) error
	AddFlag(ctx context.Context, caseID int64, request models.FlagRequest) (models.ServerFlag, error)
	DeleteFlag(ctx context.Context, caseID, flagID int64) error
	AddNote(ctx context.Context, caseID int64, request models.NoteRequest) (models.ServerNote, error)
	DeleteFile(ctx context.Context, caseID, fileID int64) error
	SetWorkTypeStatus(ctx context.Context, workTypeID int64, request models.WorkTypeStatusRequest) (models.ServerWorkType, error)
	DeleteWorkType(ctx context.Context, workTypeID int64) error

	// Claim assigns the work types named in request to orgID. An empty list
	// names every work type of the case.
	Claim(ctx context.Context, caseID, orgID int64, request models.ClaimRequest) error
	Unclaim(ctx context.Context, caseID int64, request models.ClaimRequest) error
}

// AppInfoService exposes build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
