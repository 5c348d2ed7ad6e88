package models

// CaseSyncState is the reconciliation state persisted between sync runs of
// one case.
type CaseSyncState struct {
	CaseID       int64
	ServerCaseID int64
	FlagIDs      IDMap
	NoteIDs      IDMap
	WorkTypeIDs  IDMap

	// HasPriorUnsynced is set when an earlier run left a change failed or
	// partially synced.
	HasPriorUnsynced bool
}

// IDs returns the state as the id part of a sync result.
func (s CaseSyncState) IDs() SyncIDs {
	return SyncIDs{
		ServerCaseID: s.ServerCaseID,
		FlagIDs:      s.FlagIDs.Clone(),
		NoteIDs:      s.NoteIDs.Clone(),
		WorkTypeIDs:  s.WorkTypeIDs.Clone(),
	}
}
