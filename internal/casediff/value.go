// Package casediff computes the minimal set of remote writes for a local case
// edit. It compares a start and a change snapshot and expresses the result
// relative to the remote authority's current copy of the case, so fields the
// local user did not touch keep whatever the server holds.
//
// Local snapshots always carry trimmed, defaulted strings while the remote may
// store null. The value rules below therefore compare trimmed values and fall
// back to the server value whenever the local edit cancels out.
package casediff

import (
	"strings"

	"github.com/MKhiriev/go-case-sync/models"
)

// ScalarChange returns (to, true) unless from and to are equal once trimmed,
// in which case it returns ("", false) and the caller keeps its own value.
func ScalarChange(from, to string) (string, bool) {
	if strings.TrimSpace(from) == strings.TrimSpace(to) {
		return "", false
	}
	return to, true
}

// Change returns base when the local edit from -> to cancels out and to
// otherwise.
func Change(base, from, to string) string {
	if v, changed := ScalarChange(from, to); changed {
		return v
	}
	return base
}

// BaseChange is the three-way variant for values the remote may hold as null.
// A nil base behaves as two-way diffing. An explicit empty to is returned as
// a non-nil empty string so the remote clears the field.
func BaseChange(base *string, from, to string) *string {
	if v, changed := ScalarChange(from, to); changed {
		return &v
	}
	return base
}

// BoolChange returns base unless from and to differ.
func BoolChange(base, from, to bool) bool {
	if from == to {
		return base
	}
	return to
}

// Int64PtrChange returns base unless from and to differ.
func Int64PtrChange(base, from, to *int64) *int64 {
	if equalInt64Ptr(from, to) {
		return base
	}
	return to
}

// Float64PtrChange returns base unless from and to differ.
func Float64PtrChange(base, from, to *float64) *float64 {
	if equalFloat64Ptr(from, to) {
		return base
	}
	return to
}

// FormDataChange applies the local form edit start -> change on top of the
// server's form data: keys removed locally are dropped, keys whose value
// changed are overwritten and every other server key is kept as is.
func FormDataChange(base, start, change models.FormData) models.FormData {
	out := base.Clone()
	if out == nil {
		out = make(models.FormData)
	}

	for key := range start {
		if _, ok := change[key]; !ok {
			delete(out, key)
		}
	}
	for key, value := range change {
		if prior, ok := start[key]; ok && prior.Equal(value) {
			continue
		}
		out[key] = value
	}

	return out
}

func equalInt64Ptr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalFloat64Ptr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
