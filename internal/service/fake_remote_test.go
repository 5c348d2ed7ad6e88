package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-case-sync/internal/adapter"
	"github.com/MKhiriev/go-case-sync/models"
)

// fakeRemote is an in-memory remote authority. Errors queued in errs are
// returned by the next calls of the named method; a nil entry lets the call
// succeed.
type fakeRemote struct {
	mu sync.Mutex

	nextID int64
	cases  map[int64]*models.ServerCase

	offline        bool
	sessionInvalid bool

	errs   map[string][]error
	calls  []string
	onCall func(f *fakeRemote, method string)

	pushKeys    []string
	claimed     [][]string
	unclaimed   [][]string
	conditionsN int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		nextID: 100,
		cases:  make(map[int64]*models.ServerCase),
		errs:   make(map[string][]error),
	}
}

func (f *fakeRemote) failNext(method string, errs ...error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[method] = append(f.errs[method], errs...)
}

func (f *fakeRemote) seed(c models.ServerCase) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := cloneServerCase(c)
	f.cases[c.ID] = &stored
}

func (f *fakeRemote) serverCase(id int64) models.ServerCase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneServerCase(*f.cases[id])
}

func (f *fakeRemote) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

func (f *fakeRemote) count(method string) int {
	n := 0
	for _, c := range f.callLog() {
		if c == method {
			n++
		}
	}
	return n
}

// enter records a call and returns the queued error for it. Callers hold mu.
func (f *fakeRemote) enter(method string) error {
	f.calls = append(f.calls, method)
	if f.onCall != nil {
		f.onCall(f, method)
	}
	queued := f.errs[method]
	if len(queued) == 0 {
		return nil
	}
	f.errs[method] = queued[1:]
	return queued[0]
}

func (f *fakeRemote) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeRemote) lookup(serverID int64) (*models.ServerCase, error) {
	c, ok := f.cases[serverID]
	if !ok {
		return nil, adapter.ErrNotFound
	}
	return c, nil
}

func (f *fakeRemote) FetchCase(_ context.Context, serverID int64) (models.ServerCase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("FetchCase"); err != nil {
		return models.ServerCase{}, err
	}
	c, err := f.lookup(serverID)
	if err != nil {
		return models.ServerCase{}, err
	}
	return cloneServerCase(*c), nil
}

func (f *fakeRemote) PushCore(_ context.Context, _ time.Time, idempotencyKey string, push models.CorePush) (models.ServerCase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("PushCore"); err != nil {
		return models.ServerCase{}, err
	}
	f.pushKeys = append(f.pushKeys, idempotencyKey)

	var c *models.ServerCase
	if push.ID == 0 {
		c = &models.ServerCase{ID: f.id()}
		f.cases[c.ID] = c
	} else {
		var err error
		if c, err = f.lookup(push.ID); err != nil {
			return models.ServerCase{}, err
		}
	}

	c.Address = push.Address
	c.City = push.City
	c.County = push.County
	c.Name = push.Name
	c.Phone1 = push.Phone1
	c.State = push.State
	c.Incident = push.Incident
	c.Location = push.Location
	c.FormData = push.FormData

	for _, wt := range push.WorkTypes {
		if !slices.ContainsFunc(c.WorkTypes, func(s models.ServerWorkType) bool { return s.WorkType == wt.WorkType }) {
			c.WorkTypes = append(c.WorkTypes, models.ServerWorkType{ID: f.id(), WorkType: wt.WorkType, Status: wt.Status})
		}
	}
	if push.KeyWorkType != nil {
		for _, wt := range c.WorkTypes {
			if wt.WorkType == push.KeyWorkType.WorkType {
				key := wt
				c.KeyWorkType = &key
			}
		}
	}

	return cloneServerCase(*c), nil
}

func (f *fakeRemote) SetFavorite(_ context.Context, _ time.Time, serverID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("SetFavorite"); err != nil {
		return err
	}
	c, err := f.lookup(serverID)
	if err != nil {
		return err
	}
	c.Favorite = &models.ServerFavorite{ID: f.id()}
	return nil
}

func (f *fakeRemote) ClearFavorite(_ context.Context, _ time.Time, serverID, favoriteID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("ClearFavorite"); err != nil {
		return err
	}
	c, err := f.lookup(serverID)
	if err != nil {
		return err
	}
	if c.Favorite == nil || c.Favorite.ID != favoriteID {
		return adapter.ErrNotFound
	}
	c.Favorite = nil
	return nil
}

func (f *fakeRemote) AddFlag(_ context.Context, _ time.Time, serverID int64, flag models.Flag) (models.ServerFlag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("AddFlag"); err != nil {
		return models.ServerFlag{}, err
	}
	c, err := f.lookup(serverID)
	if err != nil {
		return models.ServerFlag{}, err
	}
	added := models.ServerFlag{ID: f.id(), ReasonT: flag.ReasonT, CreatedAt: flag.CreatedAt}
	c.Flags = append(c.Flags, added)
	return added, nil
}

func (f *fakeRemote) DeleteFlag(_ context.Context, _ time.Time, serverID, flagID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("DeleteFlag"); err != nil {
		return err
	}
	c, err := f.lookup(serverID)
	if err != nil {
		return err
	}
	c.Flags = slices.DeleteFunc(c.Flags, func(fl models.ServerFlag) bool { return fl.ID == flagID })
	return nil
}

func (f *fakeRemote) AddNote(_ context.Context, _ time.Time, serverID int64, note models.Note) (models.ServerNote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("AddNote"); err != nil {
		return models.ServerNote{}, err
	}
	c, err := f.lookup(serverID)
	if err != nil {
		return models.ServerNote{}, err
	}
	added := models.ServerNote{ID: f.id(), Note: note.Content, CreatedAt: note.CreatedAt, IsSurvivor: note.IsSurvivor}
	c.Notes = append(c.Notes, added)
	return added, nil
}

func (f *fakeRemote) DeleteFile(_ context.Context, _ time.Time, _, _ int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enter("DeleteFile")
}

func (f *fakeRemote) findWorkType(workTypeID int64) (*models.ServerCase, int) {
	for _, c := range f.cases {
		for i, wt := range c.WorkTypes {
			if wt.ID == workTypeID {
				return c, i
			}
		}
	}
	return nil, -1
}

func (f *fakeRemote) SetWorkTypeStatus(_ context.Context, _ time.Time, workTypeID int64, status string) (models.ServerWorkType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("SetWorkTypeStatus"); err != nil {
		return models.ServerWorkType{}, err
	}
	c, i := f.findWorkType(workTypeID)
	if c == nil {
		return models.ServerWorkType{}, adapter.ErrNotFound
	}
	c.WorkTypes[i].Status = status
	return c.WorkTypes[i], nil
}

func (f *fakeRemote) DeleteWorkType(_ context.Context, _ time.Time, workTypeID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("DeleteWorkType"); err != nil {
		return err
	}
	c, i := f.findWorkType(workTypeID)
	if c == nil {
		return adapter.ErrNotFound
	}
	c.WorkTypes = slices.Delete(c.WorkTypes, i, i+1)
	return nil
}

func (f *fakeRemote) ClaimWorkTypes(_ context.Context, _ time.Time, serverID int64, typeKeys []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.claimed = append(f.claimed, slices.Clone(typeKeys))
	if err := f.enter("ClaimWorkTypes"); err != nil {
		return err
	}
	return f.setClaim(serverID, typeKeys, ptr(int64(7)))
}

func (f *fakeRemote) UnclaimWorkTypes(_ context.Context, _ time.Time, serverID int64, typeKeys []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unclaimed = append(f.unclaimed, slices.Clone(typeKeys))
	if err := f.enter("UnclaimWorkTypes"); err != nil {
		return err
	}
	return f.setClaim(serverID, typeKeys, nil)
}

// setClaim mirrors the remote quirk: an empty key list touches every work
// type of the case.
func (f *fakeRemote) setClaim(serverID int64, typeKeys []string, org *int64) error {
	c, err := f.lookup(serverID)
	if err != nil {
		return err
	}
	for i, wt := range c.WorkTypes {
		if len(typeKeys) == 0 || slices.Contains(typeKeys, wt.WorkType) {
			c.WorkTypes[i].ClaimedBy = org
		}
	}
	return nil
}

func (f *fakeRemote) IsOffline(_ context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conditionsN++
	return f.offline
}

func (f *fakeRemote) IsSessionTokenValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conditionsN++
	return !f.sessionInvalid
}

func cloneServerCase(c models.ServerCase) models.ServerCase {
	out := c
	out.Flags = slices.Clone(c.Flags)
	out.Notes = slices.Clone(c.Notes)
	out.WorkTypes = slices.Clone(c.WorkTypes)
	out.FormData = slices.Clone(c.FormData)
	if c.Favorite != nil {
		fav := *c.Favorite
		out.Favorite = &fav
	}
	if c.KeyWorkType != nil {
		key := *c.KeyWorkType
		out.KeyWorkType = &key
	}
	return out
}

func ptr[T any](v T) *T { return &v }
