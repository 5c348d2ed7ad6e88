// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote case authority.
//
// The sync engine depends only on [CaseReader], [CaseWriter] and
// [SyncConditions]. The package ships an HTTP/REST implementation of all three
// ([NewHTTPCaseAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401, and
// [ErrNoConnection] when no response was received at all).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-case-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/case_adapter_mock.go -package=mock

// CaseReader reads the authoritative state of a case.
type CaseReader interface {
	// FetchCase returns the full current state of the case identified by
	// serverID, including its flags, notes, work types and favorite marker.
	FetchCase(ctx context.Context, serverID int64) (models.ServerCase, error)
}

// CaseWriter writes case changes to the remote authority. changedAt is the
// local time of the edit being pushed. None of the methods retry.
type CaseWriter interface {
	// PushCore creates or updates the core fields of a case. idempotencyKey
	// identifies the queued change so a replayed push is not applied twice.
	// Returns the full case as stored after the write.
	PushCore(ctx context.Context, changedAt time.Time, idempotencyKey string, push models.CorePush) (models.ServerCase, error)

	// SetFavorite marks the case as a favorite of the current user.
	SetFavorite(ctx context.Context, changedAt time.Time, serverID int64) error

	// ClearFavorite removes the favorite marker favoriteID from the case.
	ClearFavorite(ctx context.Context, changedAt time.Time, serverID, favoriteID int64) error

	// AddFlag attaches flag to the case and returns it with its server id.
	AddFlag(ctx context.Context, changedAt time.Time, serverID int64, flag models.Flag) (models.ServerFlag, error)

	// DeleteFlag removes flag flagID from the case.
	DeleteFlag(ctx context.Context, changedAt time.Time, serverID, flagID int64) error

	// AddNote attaches note to the case and returns it with its server id.
	AddNote(ctx context.Context, changedAt time.Time, serverID int64, note models.Note) (models.ServerNote, error)

	// DeleteFile removes an uploaded file from the case.
	DeleteFile(ctx context.Context, changedAt time.Time, serverID, fileID int64) error

	// SetWorkTypeStatus changes the status of work type workTypeID.
	SetWorkTypeStatus(ctx context.Context, changedAt time.Time, workTypeID int64, status string) (models.ServerWorkType, error)

	// DeleteWorkType removes work type workTypeID from its case.
	DeleteWorkType(ctx context.Context, changedAt time.Time, workTypeID int64) error

	// ClaimWorkTypes claims the listed work types of the case for the
	// current organization. The remote treats an empty list as "all work
	// types", so callers must never send one.
	ClaimWorkTypes(ctx context.Context, changedAt time.Time, serverID int64, typeKeys []string) error

	// UnclaimWorkTypes releases the listed work types. The same empty list
	// caveat as ClaimWorkTypes applies.
	UnclaimWorkTypes(ctx context.Context, changedAt time.Time, serverID int64, typeKeys []string) error
}

// SyncConditions reports whether remote calls can currently succeed.
type SyncConditions interface {
	// IsOffline reports whether the remote authority is unreachable.
	IsOffline(ctx context.Context) bool

	// IsSessionTokenValid reports whether the held session token is present
	// and not expired.
	IsSessionTokenValid() bool
}

// CaseAdapter groups every remote capability the sync engine consumes.
type CaseAdapter interface {
	CaseReader
	CaseWriter
	SyncConditions

	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter.
	Token() string
}
