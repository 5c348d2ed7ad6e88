package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/models"
)

type pushReplay struct {
	fingerprint string
	caseID      int64
}

// memoryCaseAuthority keeps the cases of the development server in memory.
// All ids (cases, flags, notes, work types, favorites) come from one counter.
type memoryCaseAuthority struct {
	mu      sync.Mutex
	lastID  int64
	cases   map[int64]*models.ServerCase
	replays map[string]pushReplay

	now    func() time.Time
	logger *logger.Logger
}

func NewMemoryCaseAuthority(logger *logger.Logger) CaseAuthority {
	return &memoryCaseAuthority{
		cases:   make(map[int64]*models.ServerCase),
		replays: make(map[string]pushReplay),
		now:     time.Now,
		logger:  logger,
	}
}

func (m *memoryCaseAuthority) nextID() int64 {
	m.lastID++
	return m.lastID
}

func (m *memoryCaseAuthority) find(caseID int64) (*models.ServerCase, error) {
	c, ok := m.cases[caseID]
	if !ok {
		return nil, fmt.Errorf("%w: case %d", ErrNoCaseWasFound, caseID)
	}
	return c, nil
}

func (m *memoryCaseAuthority) GetCase(ctx context.Context, caseID int64) (models.ServerCase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.find(caseID)
	if err != nil {
		return models.ServerCase{}, err
	}
	return c.Clone(), nil
}

func (m *memoryCaseAuthority) SaveCore(ctx context.Context, idempotencyKey, fingerprint string, changedAt time.Time, push models.CorePush) (models.ServerCase, bool, error) {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if idempotencyKey != "" {
		if replay, seen := m.replays[idempotencyKey]; seen {
			if replay.fingerprint != fingerprint {
				return models.ServerCase{}, false, fmt.Errorf("%w: %s", ErrIdempotencyKeyReused, idempotencyKey)
			}
			c, err := m.find(replay.caseID)
			if err != nil {
				return models.ServerCase{}, false, err
			}
			log.Debug().
				Str("func", "memoryCaseAuthority.SaveCore").
				Str("idempotency_key", idempotencyKey).
				Int64("case_id", c.ID).
				Msg("core push replayed")
			return c.Clone(), true, nil
		}
	}

	var c *models.ServerCase
	if push.ID == 0 {
		id := m.nextID()
		c = &models.ServerCase{ID: id, CaseNumber: fmt.Sprintf("W%d", id)}
		m.cases[id] = c
	} else {
		var err error
		if c, err = m.find(push.ID); err != nil {
			return models.ServerCase{}, false, err
		}
	}

	c.Address = push.Address
	c.AutoContactFrequencyT = push.AutoContactFrequencyT
	c.City = push.City
	c.County = push.County
	c.Email = push.Email
	c.FormData = slices.Clone(push.FormData)
	c.Incident = push.Incident
	c.Location = push.Location
	c.Name = push.Name
	c.Phone1 = push.Phone1
	c.Phone2 = push.Phone2
	c.PlusCode = push.PlusCode
	c.PostalCode = push.PostalCode
	c.ReportedBy = push.ReportedBy
	c.State = push.State
	c.SVI = push.SVI
	c.What3Words = push.What3Words
	c.UpdatedAt = changedAt.UTC()

	for _, wt := range push.WorkTypes {
		m.ensureWorkType(c, wt)
	}
	if push.KeyWorkType != nil {
		key := m.ensureWorkType(c, *push.KeyWorkType)
		c.KeyWorkType = &key
	}

	if idempotencyKey != "" {
		m.replays[idempotencyKey] = pushReplay{fingerprint: fingerprint, caseID: c.ID}
	}

	return c.Clone(), false, nil
}

// ensureWorkType returns the work type of c with the key of push, creating
// it when c holds none.
func (m *memoryCaseAuthority) ensureWorkType(c *models.ServerCase, push models.WorkTypePush) models.ServerWorkType {
	for _, wt := range c.WorkTypes {
		if wt.WorkType == push.WorkType {
			return wt
		}
	}

	createdAt := m.now().UTC()
	wt := models.ServerWorkType{
		ID:          m.nextID(),
		CreatedAt:   &createdAt,
		NextRecurAt: push.NextRecurAt,
		Phase:       push.Phase,
		Recur:       push.Recur,
		Status:      push.Status,
		WorkType:    push.WorkType,
	}
	c.WorkTypes = append(c.WorkTypes, wt)
	return wt
}

func (m *memoryCaseAuthority) SetFavorite(ctx context.Context, caseID int64) (models.ServerFavorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.find(caseID)
	if err != nil {
		return models.ServerFavorite{}, err
	}
	if c.Favorite == nil {
		c.Favorite = &models.ServerFavorite{ID: m.nextID()}
	}
	return *c.Favorite, nil
}

func (m *memoryCaseAuthority) ClearFavorite(ctx context.Context, caseID, favoriteID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.find(caseID)
	if err != nil {
		return err
	}
	if c.Favorite == nil || c.Favorite.ID != favoriteID {
		return fmt.Errorf("%w: favorite %d of case %d", ErrNoFavoriteWasFound, favoriteID, caseID)
	}
	c.Favorite = nil
	return nil
}

func (m *memoryCaseAuthority) AddFlag(ctx context.Context, caseID int64, changedAt time.Time, flag models.Flag) (models.ServerFlag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.find(caseID)
	if err != nil {
		return models.ServerFlag{}, err
	}

	createdAt := flag.CreatedAt
	if createdAt.IsZero() {
		createdAt = changedAt
	}
	added := models.ServerFlag{
		ID:             m.nextID(),
		Action:         flag.Action,
		CreatedAt:      createdAt.UTC(),
		IsHighPriority: flag.IsHighPriority,
		Notes:          flag.Notes,
		ReasonT:        flag.ReasonT,
		RequestedAt:    flag.RequestedAt,
	}
	c.Flags = append(c.Flags, added)
	return added, nil
}

func (m *memoryCaseAuthority) DeleteFlag(ctx context.Context, caseID, flagID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.find(caseID)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(c.Flags, func(f models.ServerFlag) bool { return f.ID == flagID })
	if i < 0 {
		return fmt.Errorf("%w: flag %d of case %d", ErrNoFlagWasFound, flagID, caseID)
	}
	c.Flags = slices.Delete(c.Flags, i, i+1)
	return nil
}

func (m *memoryCaseAuthority) AddNote(ctx context.Context, caseID int64, note models.Note) (models.ServerNote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.find(caseID)
	if err != nil {
		return models.ServerNote{}, err
	}

	added := models.ServerNote{
		ID:         m.nextID(),
		CreatedAt:  note.CreatedAt.UTC(),
		IsSurvivor: note.IsSurvivor,
		Note:       note.Content,
	}
	c.Notes = append(c.Notes, added)
	return added, nil
}

// findWorkType returns the case holding workTypeID and the work type index.
func (m *memoryCaseAuthority) findWorkType(workTypeID int64) (*models.ServerCase, int, error) {
	for _, c := range m.cases {
		if i := slices.IndexFunc(c.WorkTypes, func(wt models.ServerWorkType) bool { return wt.ID == workTypeID }); i >= 0 {
			return c, i, nil
		}
	}
	return nil, -1, fmt.Errorf("%w: work type %d", ErrNoWorkTypeWasFound, workTypeID)
}

func (m *memoryCaseAuthority) SetWorkTypeStatus(ctx context.Context, workTypeID int64, status string) (models.ServerWorkType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, i, err := m.findWorkType(workTypeID)
	if err != nil {
		return models.ServerWorkType{}, err
	}
	c.WorkTypes[i].Status = status
	if c.KeyWorkType != nil && c.KeyWorkType.ID == workTypeID {
		c.KeyWorkType.Status = status
	}
	return c.WorkTypes[i], nil
}

func (m *memoryCaseAuthority) DeleteWorkType(ctx context.Context, workTypeID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, i, err := m.findWorkType(workTypeID)
	if err != nil {
		return err
	}
	c.WorkTypes = slices.Delete(c.WorkTypes, i, i+1)
	if c.KeyWorkType != nil && c.KeyWorkType.ID == workTypeID {
		c.KeyWorkType = nil
	}
	return nil
}

func (m *memoryCaseAuthority) SetClaim(ctx context.Context, caseID int64, typeKeys []string, orgID *int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.find(caseID)
	if err != nil {
		return err
	}

	for i, wt := range c.WorkTypes {
		if len(typeKeys) > 0 && !slices.Contains(typeKeys, wt.WorkType) {
			continue
		}
		if orgID == nil {
			c.WorkTypes[i].ClaimedBy = nil
		} else {
			org := *orgID
			c.WorkTypes[i].ClaimedBy = &org
		}
	}
	return nil
}
