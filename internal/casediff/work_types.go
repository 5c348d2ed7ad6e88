package casediff

import (
	"github.com/MKhiriev/go-case-sync/models"
)

// DistinctNewestWorkTypes keeps one work type per type key, the one created
// last (ties go to the larger id). Server order of the kept entries is
// preserved. When the key work type was dropped, the kept entry with the same
// type key replaces it.
func DistinctNewestWorkTypes(workTypes []models.ServerWorkType, keyWorkType *models.ServerWorkType) ([]models.ServerWorkType, *models.ServerWorkType) {
	newest := make(map[string]models.ServerWorkType, len(workTypes))
	for _, wt := range workTypes {
		current, ok := newest[wt.WorkType]
		if !ok || isNewer(wt, current) {
			newest[wt.WorkType] = wt
		}
	}

	distinct := make([]models.ServerWorkType, 0, len(newest))
	for _, wt := range workTypes {
		if newest[wt.WorkType].ID == wt.ID {
			distinct = append(distinct, wt)
		}
	}

	if keyWorkType == nil {
		return distinct, nil
	}
	if kept, ok := newest[keyWorkType.WorkType]; ok {
		return distinct, &kept
	}
	return distinct, keyWorkType
}

func isNewer(a, b models.ServerWorkType) bool {
	switch {
	case a.CreatedAt == nil && b.CreatedAt == nil:
		return a.ID > b.ID
	case a.CreatedAt == nil:
		return false
	case b.CreatedAt == nil:
		return true
	case a.CreatedAt.Equal(*b.CreatedAt):
		return a.ID > b.ID
	default:
		return a.CreatedAt.After(*b.CreatedAt)
	}
}

type resolvedWorkType struct {
	snapshot models.WorkTypeSnapshot
	serverID int64
}

// resolveWorkTypes assigns each snapshot work type its server id: its own id,
// then workTypeIDs, then the remote work type with the same key. Ids the
// remote no longer holds fall through to the key match. Zero means new.
func resolveWorkTypes(snapshots []models.WorkTypeSnapshot, workTypeIDs models.IDMap, byID map[int64]models.ServerWorkType, byKey map[string]models.ServerWorkType) []resolvedWorkType {
	out := make([]resolvedWorkType, 0, len(snapshots))
	for _, s := range snapshots {
		var serverID int64
		for _, candidate := range []int64{s.WorkType.ID, workTypeIDs.Lookup(s.LocalID)} {
			if _, ok := byID[candidate]; candidate > 0 && ok {
				serverID = candidate
				break
			}
		}
		if serverID <= 0 {
			if match, ok := byKey[s.WorkType.WorkType]; ok {
				serverID = match.ID
			}
		}
		out = append(out, resolvedWorkType{snapshot: s, serverID: serverID})
	}
	return out
}

// workTypeChanges diffs the work types of start and change against the
// deduplicated remote list. Entries are matched between snapshots by type
// key. Entries present only in change that the remote already holds are
// diffed against the remote copy.
func workTypeChanges(server []models.ServerWorkType, start, change []models.WorkTypeSnapshot, workTypeIDs models.IDMap) models.WorkTypeChanges {
	byID := make(map[int64]models.ServerWorkType, len(server))
	byKey := make(map[string]models.ServerWorkType, len(server))
	for _, wt := range server {
		byID[wt.ID] = wt
		byKey[wt.WorkType] = wt
	}

	startResolved := resolveWorkTypes(start, workTypeIDs, byID, byKey)
	changeResolved := resolveWorkTypes(change, workTypeIDs, byID, byKey)

	startByKey := make(map[string]resolvedWorkType, len(startResolved))
	for _, r := range startResolved {
		startByKey[r.snapshot.WorkType.WorkType] = r
	}

	result := models.WorkTypeChanges{
		Add:       make([]models.WorkTypeSnapshot, 0),
		Changes:   make([]models.WorkTypeChange, 0),
		DeleteIDs: make([]int64, 0),
	}

	changeKeys := make(map[string]struct{}, len(changeResolved))
	for _, c := range changeResolved {
		key := c.snapshot.WorkType.WorkType
		changeKeys[key] = struct{}{}

		if c.serverID <= 0 {
			result.Add = append(result.Add, c.snapshot)
			continue
		}

		var isClaimChange, isStatusChange bool
		if s, ok := startByKey[key]; ok {
			isClaimChange = !equalInt64Ptr(s.snapshot.WorkType.OrgClaim, c.snapshot.WorkType.OrgClaim)
			isStatusChange = s.snapshot.WorkType.Status != c.snapshot.WorkType.Status
		} else {
			remote := byID[c.serverID]
			isClaimChange = c.snapshot.WorkType.IsClaimed() != (remote.ClaimedBy != nil)
			isStatusChange = c.snapshot.WorkType.Status != remote.Status
		}
		if !isClaimChange && !isStatusChange {
			continue
		}

		wt := c.snapshot.WorkType
		wt.ID = c.serverID
		result.Changes = append(result.Changes, models.WorkTypeChange{
			LocalID:        c.snapshot.LocalID,
			ServerID:       c.serverID,
			WorkType:       wt,
			IsClaimChange:  isClaimChange,
			IsStatusChange: isStatusChange,
		})
	}

	deleted := make(map[int64]struct{})
	for _, s := range startResolved {
		if _, kept := changeKeys[s.snapshot.WorkType.WorkType]; kept {
			continue
		}
		if s.serverID <= 0 {
			continue
		}
		if _, ok := deleted[s.serverID]; ok {
			continue
		}
		deleted[s.serverID] = struct{}{}
		result.DeleteIDs = append(result.DeleteIDs, s.serverID)
	}

	return result
}
