package models

import "sort"

// FavoriteChange is the tri-state favorite (org member) transition of a
// change set.
type FavoriteChange int

const (
	// FavoriteNone leaves the remote favorite marker untouched.
	FavoriteNone FavoriteChange = iota
	// FavoriteSet marks the case as a favorite.
	FavoriteSet
	// FavoriteClear removes the favorite marker.
	FavoriteClear
)

func (f FavoriteChange) String() string {
	switch f {
	case FavoriteSet:
		return "set"
	case FavoriteClear:
		return "clear"
	default:
		return "none"
	}
}

// FlagChanges lists flags to add and server flag ids to delete.
type FlagChanges struct {
	Add       []FlagSnapshot
	DeleteIDs []int64
}

// WorkTypeChange is an existing work type whose claim and/or status changed.
type WorkTypeChange struct {
	LocalID        int64
	ServerID       int64
	WorkType       WorkType
	IsClaimChange  bool
	IsStatusChange bool
}

// WorkTypeChanges lists new work types, changed work types and server work
// type ids to delete.
type WorkTypeChanges struct {
	Add       []WorkTypeSnapshot
	Changes   []WorkTypeChange
	DeleteIDs []int64
}

// ClaimKeys returns the sorted type keys to claim: changed work types now
// claimed and new work types created claimed.
func (w WorkTypeChanges) ClaimKeys() []string {
	keys := make([]string, 0)
	for _, c := range w.Changes {
		if c.IsClaimChange && c.WorkType.IsClaimed() {
			keys = append(keys, c.WorkType.WorkType)
		}
	}
	for _, a := range w.Add {
		if a.WorkType.IsClaimed() {
			keys = append(keys, a.WorkType.WorkType)
		}
	}
	return sortedUnique(keys)
}

// UnclaimKeys returns the sorted type keys of changed work types now released.
func (w WorkTypeChanges) UnclaimKeys() []string {
	keys := make([]string, 0)
	for _, c := range w.Changes {
		if c.IsClaimChange && !c.WorkType.IsClaimed() {
			keys = append(keys, c.WorkType.WorkType)
		}
	}
	return sortedUnique(keys)
}

// StatusChanges returns the changed work types whose status must be written.
func (w WorkTypeChanges) StatusChanges() []WorkTypeChange {
	out := make([]WorkTypeChange, 0, len(w.Changes))
	for _, c := range w.Changes {
		if c.IsStatusChange {
			out = append(out, c)
		}
	}
	return out
}

// IsEmpty reports whether nothing must be written for work types.
func (w WorkTypeChanges) IsEmpty() bool {
	return len(w.Add) == 0 && len(w.Changes) == 0 && len(w.DeleteIDs) == 0
}

// ChangeSet is the minimal set of remote writes computed for one queued
// change.
type ChangeSet struct {
	Core      *CorePush
	Favorite  FavoriteChange
	NewNotes  []NoteSnapshot
	Flags     FlagChanges
	WorkTypes WorkTypeChanges
}

// IsEmpty reports whether the change set requires no remote write.
func (c ChangeSet) IsEmpty() bool {
	return c.Core == nil &&
		c.Favorite == FavoriteNone &&
		len(c.NewNotes) == 0 &&
		len(c.Flags.Add) == 0 &&
		len(c.Flags.DeleteIDs) == 0 &&
		c.WorkTypes.IsEmpty()
}

func sortedUnique(keys []string) []string {
	sort.Strings(keys)
	out := keys[:0]
	for i, k := range keys {
		if i > 0 && keys[i-1] == k {
			continue
		}
		out = append(out, k)
	}
	return out
}
