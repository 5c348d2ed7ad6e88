package models

import (
	"fmt"
	"time"
)

// SchemaVersion tags the serialized layout of a queued change.
type SchemaVersion int

const (
	// SchemaV1 is the only supported layout: a JSON encoded CaseChange.
	SchemaV1 SchemaVersion = 1
)

// CurrentSchemaVersion is the version written for newly queued changes.
const CurrentSchemaVersion = SchemaV1

// IsSupported reports whether v can be decoded.
func (v SchemaVersion) IsSupported() bool {
	switch v {
	case SchemaV1:
		return true
	default:
		return false
	}
}

func (v SchemaVersion) String() string {
	return fmt.Sprintf("v%d", int(v))
}

// CaseChange is a single local edit of a case. A nil Start means the case was
// created locally and everything must be pushed.
type CaseChange struct {
	Start        *CaseSnapshot `json:"start,omitempty"`
	Change       CaseSnapshot  `json:"change"`
	ModelVersion int           `json:"model_version"`
}

// IsCreate reports whether the change creates the case.
func (c CaseChange) IsCreate() bool {
	return c.Start == nil
}

// QueuedChange is a stored, not yet synced change record. Data holds the
// CaseChange serialized at SchemaVersion.
type QueuedChange struct {
	ID                int64         `json:"id"`
	CaseID            int64         `json:"case_id"`
	CreatedAt         time.Time     `json:"created_at"`
	SyncUUID          string        `json:"sync_uuid"`
	SchemaVersion     SchemaVersion `json:"schema_version"`
	Data              string        `json:"data"`
	IsPartiallySynced bool          `json:"is_partially_synced"`
	SaveAttempt       int           `json:"save_attempt"`
}

// QueuedCaseChange is a QueuedChange after its data has been decoded.
type QueuedCaseChange struct {
	ID                int64
	CreatedAt         time.Time
	SyncUUID          string
	IsPartiallySynced bool
	Change            CaseChange
}
