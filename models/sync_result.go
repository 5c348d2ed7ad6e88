package models

import (
	"fmt"
	"strings"
)

// SyncOutcome classifies the result of pushing one queued change.
type SyncOutcome int

const (
	// OutcomeFailed means the core push failed or sync could not start.
	OutcomeFailed SyncOutcome = iota
	// OutcomePartiallySynced means the core succeeded but at least one
	// sub-resource write failed.
	OutcomePartiallySynced
	// OutcomeFullySynced means every write of the change set succeeded.
	OutcomeFullySynced
)

func (o SyncOutcome) String() string {
	switch o {
	case OutcomeFullySynced:
		return "fully_synced"
	case OutcomePartiallySynced:
		return "partially_synced"
	default:
		return "failed"
	}
}

// FailureKind tags what a SyncFailure was recorded against.
type FailureKind int

const (
	FailureCore FailureKind = iota
	FailureFavorite
	FailureFlagAdd
	FailureFlagDelete
	FailureNoteAdd
	FailureWorkTypeStatus
	FailureWorkTypeDelete
	FailureWorkTypeClaim
	FailureWorkTypeUnclaim
	FailureConnectivity
	FailureSession
	FailureCaseNotFound
)

func (k FailureKind) String() string {
	switch k {
	case FailureCore:
		return "core"
	case FailureFavorite:
		return "favorite"
	case FailureFlagAdd:
		return "flag_add"
	case FailureFlagDelete:
		return "flag_delete"
	case FailureNoteAdd:
		return "note_add"
	case FailureWorkTypeStatus:
		return "work_type_status"
	case FailureWorkTypeDelete:
		return "work_type_delete"
	case FailureWorkTypeClaim:
		return "work_type_claim"
	case FailureWorkTypeUnclaim:
		return "work_type_unclaim"
	case FailureConnectivity:
		return "no_connectivity"
	case FailureSession:
		return "invalid_session"
	case FailureCaseNotFound:
		return "case_not_found"
	default:
		return fmt.Sprintf("failure(%d)", int(k))
	}
}

// IsSubResource reports whether the failure belongs to a flag, note, work
// type or favorite write. Sub-resource failures never stop the queue.
func (k FailureKind) IsSubResource() bool {
	switch k {
	case FailureFavorite, FailureFlagAdd, FailureFlagDelete, FailureNoteAdd,
		FailureWorkTypeStatus, FailureWorkTypeDelete, FailureWorkTypeClaim, FailureWorkTypeUnclaim:
		return true
	default:
		return false
	}
}

// IsAbort reports whether the failure stops the remaining queue.
func (k FailureKind) IsAbort() bool {
	return k == FailureConnectivity || k == FailureSession
}

// SyncFailure is one recorded failure of a change set. LocalID is the local
// id of the flag, note or work type involved; ServerID is set for deletes.
// TypeKeys lists the work type keys of a claim or unclaim batch.
type SyncFailure struct {
	Kind     FailureKind
	LocalID  int64
	ServerID int64
	TypeKeys []string
	Err      error
}

// Summary renders the failure for diagnostic logging.
func (f SyncFailure) Summary() string {
	var b strings.Builder
	b.WriteString(f.Kind.String())
	if f.LocalID != 0 {
		fmt.Fprintf(&b, " local_id=%d", f.LocalID)
	}
	if f.ServerID != 0 {
		fmt.Fprintf(&b, " server_id=%d", f.ServerID)
	}
	if len(f.TypeKeys) > 0 {
		fmt.Fprintf(&b, " work_types=%s", strings.Join(f.TypeKeys, ","))
	}
	if f.Err != nil {
		fmt.Fprintf(&b, ": %s", f.Err.Error())
	}
	return b.String()
}

// ChangeResult is the outcome of one queued change.
type ChangeResult struct {
	ChangeID int64
	Outcome  SyncOutcome
	Failures []SyncFailure
}

// IsAborted reports whether the change stopped the queue.
func (c ChangeResult) IsAborted() bool {
	for _, f := range c.Failures {
		if f.Kind.IsAbort() {
			return true
		}
	}
	return false
}

// SyncIDs carries the reconciliation state a caller persists after a run.
type SyncIDs struct {
	ServerCaseID int64
	FlagIDs      IDMap
	NoteIDs      IDMap
	WorkTypeIDs  IDMap
}

// SyncResult aggregates the outcome of processing a case's queued changes.
type SyncResult struct {
	ChangeResults []ChangeResult
	IDs           SyncIDs
}

// IsFullySynced reports whether every processed change fully synced.
func (r SyncResult) IsFullySynced() bool {
	for _, c := range r.ChangeResults {
		if c.Outcome != OutcomeFullySynced {
			return false
		}
	}
	return true
}

// Failures returns every failure recorded across all changes.
func (r SyncResult) Failures() []SyncFailure {
	var out []SyncFailure
	for _, c := range r.ChangeResults {
		out = append(out, c.Failures...)
	}
	return out
}

// SettledChangeIDs returns the ids of changes that no longer need syncing:
// every change up to and including the last fully synced one. A fully synced
// change was diffed from the last applied snapshot, so its writes cover every
// earlier change that failed or partially synced.
func (r SyncResult) SettledChangeIDs() []int64 {
	last := -1
	for i, c := range r.ChangeResults {
		if c.Outcome == OutcomeFullySynced {
			last = i
		}
	}

	ids := make([]int64, 0, last+1)
	for _, c := range r.ChangeResults[:last+1] {
		ids = append(ids, c.ChangeID)
	}
	return ids
}

// UnsettledResults returns the results after the last fully synced change.
func (r SyncResult) UnsettledResults() []ChangeResult {
	settled := len(r.SettledChangeIDs())
	return r.ChangeResults[settled:]
}
