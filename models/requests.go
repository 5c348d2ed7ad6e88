// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CorePushRequest is the body of a core create or update.
type CorePushRequest struct {
	// ChangedAt is the local time of the edit being pushed.
	ChangedAt time.Time `json:"changed_at"`

	// Case holds the fields to write. Case.ID == 0 creates a new case.
	Case CorePush `json:"case"`
}

// ChangedAtRequest is the body of writes that carry nothing but the edit time
// (favorite set and clear, deletes).
type ChangedAtRequest struct {
	ChangedAt time.Time `json:"changed_at"`
}

// FlagRequest attaches a flag to a case.
type FlagRequest struct {
	ChangedAt time.Time `json:"changed_at"`
	Flag      Flag      `json:"flag"`
}

// NoteRequest attaches a note to a case.
type NoteRequest struct {
	ChangedAt time.Time `json:"changed_at"`
	Note      Note      `json:"note"`
}

// WorkTypeStatusRequest changes the status of a single work type.
type WorkTypeStatusRequest struct {
	ChangedAt time.Time `json:"changed_at"`
	Status    string    `json:"status"`
}

// ClaimRequest claims or releases work types of a case by type key.
//
// The remote reads an empty WorkTypes list as "every work type of the case".
type ClaimRequest struct {
	ChangedAt time.Time `json:"changed_at"`
	WorkTypes []string  `json:"work_types"`
}
