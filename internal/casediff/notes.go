package casediff

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-case-sync/models"
)

// newNotes returns notes without a server id and with content, dropping any
// the remote already holds: same trimmed lowercased text created within
// window of the local note.
func newNotes(server []models.ServerNote, change []models.NoteSnapshot, noteIDs models.IDMap, window time.Duration) []models.NoteSnapshot {
	out := make([]models.NoteSnapshot, 0)
	for _, n := range change {
		if n.Note.ID > 0 || noteIDs.Lookup(n.LocalID) > 0 {
			continue
		}
		if strings.TrimSpace(n.Note.Content) == "" {
			continue
		}
		if isDuplicateNote(server, n.Note, window) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func isDuplicateNote(server []models.ServerNote, note models.Note, window time.Duration) bool {
	content := normalizeNote(note.Content)
	for _, s := range server {
		if normalizeNote(s.Note) != content {
			continue
		}
		if absDuration(s.CreatedAt.Sub(note.CreatedAt)) <= window {
			return true
		}
	}
	return false
}

func normalizeNote(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
