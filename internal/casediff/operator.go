package casediff

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-case-sync/models"
)

// DefaultNoteDuplicateWindow is how far apart two notes with the same text may
// have been created and still count as the same note.
const DefaultNoteDuplicateWindow = 12 * time.Hour

// Operator computes change sets for queued case changes.
type Operator struct {
	noteDuplicateWindow time.Duration
}

// NewOperator returns an Operator using the default note duplicate window.
func NewOperator() *Operator {
	return &Operator{noteDuplicateWindow: DefaultNoteDuplicateWindow}
}

// CreationSet returns the change set of a case the remote has never seen:
// every field, flag, non-blank note and work type is pushed.
func (o *Operator) CreationSet(change models.CaseSnapshot) models.ChangeSet {
	core := change.Core

	var keyWorkType *models.WorkTypePush
	if core.KeyWorkType != nil {
		push := workTypePush(*core.KeyWorkType)
		keyWorkType = &push
	}

	newWorkTypes := make([]models.WorkTypeSnapshot, 0, len(change.WorkTypes))
	pushes := make([]models.WorkTypePush, 0, len(change.WorkTypes))
	for _, wt := range change.WorkTypes {
		newWorkTypes = append(newWorkTypes, wt)
		pushes = append(pushes, workTypePush(wt.WorkType))
	}

	push := &models.CorePush{
		Address:               core.Address,
		AutoContactFrequencyT: core.AutoContactFrequencyT,
		CaseNumber:            core.CaseNumber,
		City:                  core.City,
		County:                core.County,
		Email:                 nonBlank(core.Email),
		FormData:              core.FormData.ToKeyDynamicValues(),
		Incident:              core.IncidentID,
		KeyWorkType:           keyWorkType,
		Location:              models.NewLocation(core.Latitude, core.Longitude),
		Name:                  core.Name,
		Phone1:                core.Phone1,
		Phone2:                nonBlank(core.Phone2),
		PlusCode:              nonBlank(core.PlusCode),
		PostalCode:            nonBlank(core.PostalCode),
		ReportedBy:            core.ReportedBy,
		State:                 core.State,
		SVI:                   core.SVI,
		UpdatedAt:             core.UpdatedAt,
		What3Words:            nonBlank(core.What3Words),
		WorkTypes:             pushes,
	}

	favorite := models.FavoriteNone
	if core.IsAssignedToOrgMember {
		favorite = models.FavoriteSet
	}

	flags := make([]models.FlagSnapshot, 0, len(change.Flags))
	flags = append(flags, change.Flags...)

	notes := make([]models.NoteSnapshot, 0, len(change.Notes))
	for _, n := range change.Notes {
		if strings.TrimSpace(n.Note.Content) != "" {
			notes = append(notes, n)
		}
	}

	return models.ChangeSet{
		Core:      push,
		Favorite:  favorite,
		NewNotes:  notes,
		Flags:     models.FlagChanges{Add: flags},
		WorkTypes: models.WorkTypeChanges{Add: newWorkTypes},
	}
}

// ChangeSet returns the writes needed to move the remote case from its
// current state by the local edit start -> change. flagIDs, noteIDs and
// workTypeIDs resolve sub-entities that reached the remote in an earlier push
// but whose snapshots still carry no server id. The maps are only read.
func (o *Operator) ChangeSet(
	server models.ServerCase,
	start, change models.CaseSnapshot,
	flagIDs, noteIDs, workTypeIDs models.IDMap,
) models.ChangeSet {
	serverWorkTypes, keyWorkType := DistinctNewestWorkTypes(server.WorkTypes, server.KeyWorkType)

	workTypes := workTypeChanges(serverWorkTypes, start.WorkTypes, change.WorkTypes, workTypeIDs)

	return models.ChangeSet{
		Core:      coreChange(server, keyWorkType, start.Core, change.Core, workTypes.Add),
		Favorite:  favoriteChange(start.Core.IsAssignedToOrgMember, change.Core.IsAssignedToOrgMember, server.Favorite != nil),
		NewNotes:  newNotes(server.Notes, change.Notes, noteIDs, o.noteDuplicateWindow),
		Flags:     flagChanges(server.Flags, start.Flags, change.Flags, flagIDs),
		WorkTypes: workTypes,
	}
}

func coreChange(
	server models.ServerCase,
	keyWorkType *models.ServerWorkType,
	start, change models.CoreSnapshot,
	newWorkTypes []models.WorkTypeSnapshot,
) *models.CorePush {
	if start.EqualIgnoringTimestamps(change) && len(newWorkTypes) == 0 {
		return nil
	}

	location := server.Location
	if start.Latitude != change.Latitude || start.Longitude != change.Longitude {
		location = models.NewLocation(change.Latitude, change.Longitude)
	}

	incident := server.Incident
	if start.IncidentID != change.IncidentID {
		incident = change.IncidentID
	}

	var keyPush *models.WorkTypePush
	if start.KeyWorkType.TypeKey() != change.KeyWorkType.TypeKey() && change.KeyWorkType != nil {
		p := workTypePush(*change.KeyWorkType)
		keyPush = &p
	} else if keyWorkType != nil {
		p := serverWorkTypePush(*keyWorkType)
		keyPush = &p
	}

	formData := FormDataChange(models.ToFormData(server.FormData), start.FormData, change.FormData)

	var pushes []models.WorkTypePush
	for _, wt := range newWorkTypes {
		pushes = append(pushes, workTypePush(wt.WorkType))
	}

	return &models.CorePush{
		ID:                    server.ID,
		Address:               Change(server.Address, start.Address, change.Address),
		AutoContactFrequencyT: Change(server.AutoContactFrequencyT, start.AutoContactFrequencyT, change.AutoContactFrequencyT),
		CaseNumber:            server.CaseNumber,
		City:                  Change(server.City, start.City, change.City),
		County:                Change(server.County, start.County, change.County),
		Email:                 BaseChange(server.Email, start.Email, change.Email),
		FormData:              formData.ToKeyDynamicValues(),
		Incident:              incident,
		KeyWorkType:           keyPush,
		Location:              location,
		Name:                  Change(server.Name, start.Name, change.Name),
		Phone1:                Change(server.Phone1, start.Phone1, change.Phone1),
		Phone2:                BaseChange(server.Phone2, start.Phone2, change.Phone2),
		PlusCode:              BaseChange(server.PlusCode, start.PlusCode, change.PlusCode),
		PostalCode:            BaseChange(server.PostalCode, start.PostalCode, change.PostalCode),
		ReportedBy:            Int64PtrChange(server.ReportedBy, start.ReportedBy, change.ReportedBy),
		State:                 Change(server.State, start.State, change.State),
		SVI:                   Float64PtrChange(server.SVI, start.SVI, change.SVI),
		UpdatedAt:             change.UpdatedAt,
		What3Words:            BaseChange(server.What3Words, start.What3Words, change.What3Words),
		WorkTypes:             pushes,
	}
}

// favoriteChange returns FavoriteNone when the local member flag did not
// change or the remote already matches the target state.
func favoriteChange(start, change, serverHasFavorite bool) models.FavoriteChange {
	if start == change || change == serverHasFavorite {
		return models.FavoriteNone
	}
	if change {
		return models.FavoriteSet
	}
	return models.FavoriteClear
}

func workTypePush(wt models.WorkType) models.WorkTypePush {
	return models.WorkTypePush{
		WorkType:    wt.WorkType,
		Status:      wt.Status,
		NextRecurAt: wt.NextRecurAt,
		Phase:       wt.Phase,
		Recur:       wt.Recur,
	}
}

func serverWorkTypePush(wt models.ServerWorkType) models.WorkTypePush {
	return models.WorkTypePush{
		WorkType:    wt.WorkType,
		Status:      wt.Status,
		NextRecurAt: wt.NextRecurAt,
		Phase:       wt.Phase,
		Recur:       wt.Recur,
	}
}

func nonBlank(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
