// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// CoreSnapshot captures the scalar fields of a case at one point of local
// editing history. Snapshots are values and are never modified after capture.
type CoreSnapshot struct {
	ID                    int64      `json:"id"`
	ServerID              int64      `json:"network_id"`
	Address               string     `json:"address"`
	AutoContactFrequencyT string     `json:"auto_contact_frequency_t"`
	CaseNumber            string     `json:"case_number"`
	City                  string     `json:"city"`
	County                string     `json:"county"`
	CreatedAt             *time.Time `json:"created_at,omitempty"`
	Email                 string     `json:"email"`
	FavoriteID            *int64     `json:"favorite_id,omitempty"`
	FormData              FormData   `json:"form_data,omitempty"`
	IncidentID            int64      `json:"incident_id"`
	KeyWorkType           *WorkType  `json:"key_work_type,omitempty"`
	Latitude              float64    `json:"latitude"`
	Longitude             float64    `json:"longitude"`
	Name                  string     `json:"name"`
	Phone1                string     `json:"phone1"`
	Phone2                string     `json:"phone2"`
	PlusCode              string     `json:"plus_code"`
	PostalCode            string     `json:"postal_code"`
	ReportedBy            *int64     `json:"reported_by,omitempty"`
	State                 string     `json:"state"`
	SVI                   *float64   `json:"svi,omitempty"`
	UpdatedAt             *time.Time `json:"updated_at,omitempty"`
	What3Words            string     `json:"what3words"`
	IsAssignedToOrgMember bool       `json:"is_assigned_to_org_member"`
}

// EqualIgnoringTimestamps compares c and other field by field. Strings are
// compared trimmed. Ids, the favorite id, created/updated timestamps and the
// org member flag are ignored since none of them produces a core push.
func (c CoreSnapshot) EqualIgnoringTimestamps(other CoreSnapshot) bool {
	strs := [][2]string{
		{c.Address, other.Address},
		{c.AutoContactFrequencyT, other.AutoContactFrequencyT},
		{c.CaseNumber, other.CaseNumber},
		{c.City, other.City},
		{c.County, other.County},
		{c.Email, other.Email},
		{c.Name, other.Name},
		{c.Phone1, other.Phone1},
		{c.Phone2, other.Phone2},
		{c.PlusCode, other.PlusCode},
		{c.PostalCode, other.PostalCode},
		{c.State, other.State},
		{c.What3Words, other.What3Words},
	}
	for _, pair := range strs {
		if strings.TrimSpace(pair[0]) != strings.TrimSpace(pair[1]) {
			return false
		}
	}

	return c.FormData.Equal(other.FormData) &&
		c.IncidentID == other.IncidentID &&
		c.KeyWorkType.TypeKey() == other.KeyWorkType.TypeKey() &&
		c.Latitude == other.Latitude &&
		c.Longitude == other.Longitude &&
		equalInt64Ptr(c.ReportedBy, other.ReportedBy) &&
		equalFloat64Ptr(c.SVI, other.SVI)
}

// Flag is the payload of a case flag.
type Flag struct {
	ID             int64      `json:"id"`
	Action         string     `json:"action"`
	CreatedAt      time.Time  `json:"created_at"`
	IsHighPriority bool       `json:"is_high_priority"`
	Notes          string     `json:"notes"`
	ReasonT        string     `json:"reason_t"`
	Reason         string     `json:"reason"`
	RequestedAt    *time.Time `json:"requested_action_at,omitempty"`
}

// FlagSnapshot pairs a flag with its local id.
type FlagSnapshot struct {
	LocalID int64 `json:"local_id"`
	Flag    Flag  `json:"flag"`
}

// Note is the payload of a case note.
type Note struct {
	ID         int64     `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	IsSurvivor bool      `json:"is_survivor"`
	Content    string    `json:"note"`
}

// NoteSnapshot pairs a note with its local id.
type NoteSnapshot struct {
	LocalID int64 `json:"local_id"`
	Note    Note  `json:"note"`
}

// WorkType is the payload of a case work type. A nil OrgClaim means the work
// type is unclaimed.
type WorkType struct {
	ID          int64      `json:"id"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	OrgClaim    *int64     `json:"org_claim,omitempty"`
	NextRecurAt *time.Time `json:"next_recur_at,omitempty"`
	Phase       *int       `json:"phase,omitempty"`
	Recur       string     `json:"recur,omitempty"`
	Status      string     `json:"status"`
	WorkType    string     `json:"work_type"`
}

// TypeKey returns the work type key or an empty string for a nil receiver.
func (w *WorkType) TypeKey() string {
	if w == nil {
		return ""
	}
	return w.WorkType
}

// IsClaimed reports whether any organization holds the work type.
func (w WorkType) IsClaimed() bool {
	return w.OrgClaim != nil
}

// WorkTypeSnapshot pairs a work type with its local id.
type WorkTypeSnapshot struct {
	LocalID  int64    `json:"local_id"`
	WorkType WorkType `json:"work_type"`
}

// CaseSnapshot is the full captured state of a case.
type CaseSnapshot struct {
	Core      CoreSnapshot       `json:"core"`
	Flags     []FlagSnapshot     `json:"flags"`
	Notes     []NoteSnapshot     `json:"notes"`
	WorkTypes []WorkTypeSnapshot `json:"work_types"`
}

// WithoutSubEntities returns a copy of s keeping only the core fields and
// clearing the org member flag. It stands in for the start of a creation
// change that is replayed after the case already reached the server.
func (s CaseSnapshot) WithoutSubEntities() CaseSnapshot {
	core := s.Core
	core.IsAssignedToOrgMember = false
	return CaseSnapshot{Core: core}
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
