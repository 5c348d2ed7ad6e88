package models

import "sort"

// IDMap maps local sub-entity ids to server ids.
type IDMap map[int64]int64

// Clone returns an independent copy of m. A nil map clones to an empty map.
func (m IDMap) Clone() IDMap {
	out := make(IDMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Lookup returns the server id for localID or 0 when unknown.
func (m IDMap) Lookup(localID int64) int64 {
	return m[localID]
}

// LocalIDs returns the local ids in ascending order.
func (m IDMap) LocalIDs() []int64 {
	ids := make([]int64, 0, len(m))
	for k := range m {
		ids = append(ids, k)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DropServerID removes every entry that maps to serverID.
func (m IDMap) DropServerID(serverID int64) {
	for k, v := range m {
		if v == serverID {
			delete(m, k)
		}
	}
}
