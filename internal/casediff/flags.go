package casediff

import (
	"strings"

	"github.com/MKhiriev/go-case-sync/models"
)

// flagChanges adds flags the remote does not know yet and deletes flags the
// local edit removed. A flag counts as known when it has a server id or the
// remote already holds a flag with the same reason, which keeps a retried
// partial sync from creating the flag twice. Only reasons present in start
// can be deleted, and only when the remote still holds them.
func flagChanges(server []models.ServerFlag, start, change []models.FlagSnapshot, flagIDs models.IDMap) models.FlagChanges {
	serverReasons := make(map[string]int64, len(server))
	for _, f := range server {
		serverReasons[reasonKey(f.ReasonT)] = f.ID
	}

	changeReasons := make(map[string]struct{}, len(change))
	add := make([]models.FlagSnapshot, 0)
	queued := make(map[string]struct{})
	for _, f := range backfillFlags(change, flagIDs) {
		reason := reasonKey(f.Flag.ReasonT)
		changeReasons[reason] = struct{}{}

		if f.Flag.ID > 0 {
			continue
		}
		if _, onServer := serverReasons[reason]; onServer {
			continue
		}
		if _, ok := queued[reason]; ok {
			continue
		}
		queued[reason] = struct{}{}
		add = append(add, f)
	}

	deleteIDs := make([]int64, 0)
	deleted := make(map[int64]struct{})
	for _, f := range backfillFlags(start, flagIDs) {
		reason := reasonKey(f.Flag.ReasonT)
		if _, kept := changeReasons[reason]; kept {
			continue
		}
		id, onServer := serverReasons[reason]
		if !onServer {
			continue
		}
		if _, ok := deleted[id]; ok {
			continue
		}
		deleted[id] = struct{}{}
		deleteIDs = append(deleteIDs, id)
	}

	return models.FlagChanges{Add: add, DeleteIDs: deleteIDs}
}

// backfillFlags returns copies of flags with unset server ids filled from
// flagIDs.
func backfillFlags(flags []models.FlagSnapshot, flagIDs models.IDMap) []models.FlagSnapshot {
	out := make([]models.FlagSnapshot, len(flags))
	for i, f := range flags {
		if f.Flag.ID <= 0 {
			f.Flag.ID = flagIDs.Lookup(f.LocalID)
		}
		out[i] = f
	}
	return out
}

func reasonKey(reason string) string {
	return strings.TrimSpace(reason)
}
