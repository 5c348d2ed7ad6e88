package models

import "time"

// Location is a GeoJSON point. Coordinates are ordered longitude, latitude.
type Location struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// NewLocation builds a point location from latitude and longitude.
func NewLocation(latitude, longitude float64) Location {
	return Location{Type: "Point", Coordinates: [2]float64{longitude, latitude}}
}

// Latitude returns the point latitude.
func (l Location) Latitude() float64 { return l.Coordinates[1] }

// Longitude returns the point longitude.
func (l Location) Longitude() float64 { return l.Coordinates[0] }

// ServerFavorite marks a case as a favorite of the current user on the
// remote authority.
type ServerFavorite struct {
	ID int64 `json:"id"`
}

// ServerFlag is a flag as stored by the remote authority.
type ServerFlag struct {
	ID             int64      `json:"id"`
	Action         string     `json:"action,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	IsHighPriority bool       `json:"is_high_priority"`
	Notes          string     `json:"notes,omitempty"`
	ReasonT        string     `json:"reason_t"`
	RequestedAt    *time.Time `json:"requested_action_at,omitempty"`
}

// ServerNote is a note as stored by the remote authority.
type ServerNote struct {
	ID         int64     `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	IsSurvivor bool      `json:"is_survivor"`
	Note       string    `json:"note"`
}

// ServerWorkType is a work type as stored by the remote authority.
type ServerWorkType struct {
	ID          int64      `json:"id"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	ClaimedBy   *int64     `json:"claimed_by,omitempty"`
	NextRecurAt *time.Time `json:"next_recur_at,omitempty"`
	Phase       *int       `json:"phase,omitempty"`
	Recur       string     `json:"recur,omitempty"`
	Status      string     `json:"status"`
	WorkType    string     `json:"work_type"`
}

// ServerCase is the full current state of a case on the remote authority.
// Nullable fields are pointers because the remote may store null where the
// local snapshot carries an empty string.
type ServerCase struct {
	ID                    int64             `json:"id"`
	Address               string            `json:"address"`
	AutoContactFrequencyT string            `json:"auto_contact_frequency_t"`
	CaseNumber            string            `json:"case_number"`
	City                  string            `json:"city"`
	County                string            `json:"county"`
	Email                 *string           `json:"email"`
	Favorite              *ServerFavorite   `json:"favorite"`
	Flags                 []ServerFlag      `json:"flags"`
	FormData              []KeyDynamicValue `json:"form_data"`
	Incident              int64             `json:"incident"`
	KeyWorkType           *ServerWorkType   `json:"key_work_type"`
	Location              Location          `json:"location"`
	Name                  string            `json:"name"`
	Notes                 []ServerNote      `json:"notes"`
	Phone1                string            `json:"phone1"`
	Phone2                *string           `json:"phone2"`
	PlusCode              *string           `json:"pluscode"`
	PostalCode            *string           `json:"postal_code"`
	ReportedBy            *int64            `json:"reported_by"`
	State                 string            `json:"state"`
	SVI                   *float64          `json:"svi"`
	UpdatedAt             time.Time         `json:"updated_at"`
	What3Words            *string           `json:"what3words"`
	WorkTypes             []ServerWorkType  `json:"work_types"`
}

// WorkTypePush is a work type sent along with a core push. The remote
// creates work types it does not already hold for the case.
type WorkTypePush struct {
	WorkType    string     `json:"work_type"`
	Status      string     `json:"status"`
	NextRecurAt *time.Time `json:"next_recur_at,omitempty"`
	Phase       *int       `json:"phase,omitempty"`
	Recur       string     `json:"recur,omitempty"`
}

// CorePush is the core field payload written to the remote authority. ID is
// zero for a case the remote has not seen yet.
type CorePush struct {
	ID                    int64             `json:"id,omitempty"`
	Address               string            `json:"address"`
	AutoContactFrequencyT string            `json:"auto_contact_frequency_t"`
	CaseNumber            string            `json:"case_number,omitempty"`
	City                  string            `json:"city"`
	County                string            `json:"county"`
	Email                 *string           `json:"email"`
	FormData              []KeyDynamicValue `json:"form_data"`
	Incident              int64             `json:"incident"`
	KeyWorkType           *WorkTypePush     `json:"key_work_type"`
	Location              Location          `json:"location"`
	Name                  string            `json:"name"`
	Phone1                string            `json:"phone1"`
	Phone2                *string           `json:"phone2"`
	PlusCode              *string           `json:"pluscode"`
	PostalCode            *string           `json:"postal_code"`
	ReportedBy            *int64            `json:"reported_by"`
	State                 string            `json:"state"`
	SVI                   *float64          `json:"svi"`
	UpdatedAt             *time.Time        `json:"updated_at,omitempty"`
	What3Words            *string           `json:"what3words"`
	WorkTypes             []WorkTypePush    `json:"work_types,omitempty"`
}

// Clone returns a deep copy of c.
func (c ServerCase) Clone() ServerCase {
	out := c
	out.Flags = append([]ServerFlag(nil), c.Flags...)
	out.Notes = append([]ServerNote(nil), c.Notes...)
	out.WorkTypes = append([]ServerWorkType(nil), c.WorkTypes...)
	out.FormData = append([]KeyDynamicValue(nil), c.FormData...)
	if c.Favorite != nil {
		favorite := *c.Favorite
		out.Favorite = &favorite
	}
	if c.KeyWorkType != nil {
		key := *c.KeyWorkType
		out.KeyWorkType = &key
	}
	return out
}
