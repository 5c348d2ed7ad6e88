package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/internal/mock"
	"github.com/MKhiriev/go-case-sync/internal/store"
	"github.com/MKhiriev/go-case-sync/models"
)

func newTestAuthorityService(t *testing.T) (CaseAuthorityService, *mock.MockCaseAuthority) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCaseAuthority(ctrl)
	return NewCaseAuthorityService(repo, logger.Nop()), repo
}

func TestCaseAuthorityService_PushCore(t *testing.T) {
	svc, repo := newTestAuthorityService(t)

	request := models.CorePushRequest{
		ChangedAt: editedAt,
		Case:      models.CorePush{Name: "Dana", Incident: 40},
	}
	repo.EXPECT().
		SaveCore(gomock.Any(), "key-1", "fp-1", editedAt, request.Case).
		Return(models.ServerCase{ID: 9, Name: "Dana"}, true, nil)

	saved, replayed, err := svc.PushCore(context.Background(), "key-1", "fp-1", request)

	require.NoError(t, err)
	assert.True(t, replayed)
	assert.Equal(t, int64(9), saved.ID)
}

func TestCaseAuthorityService_PushCoreValidation(t *testing.T) {
	tests := []struct {
		name string
		push models.CorePush
	}{
		{name: "negative id", push: models.CorePush{ID: -1, Name: "Dana", Incident: 40}},
		{name: "new case without incident", push: models.CorePush{Name: "Dana"}},
		{name: "new case without name", push: models.CorePush{Name: "  ", Incident: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthorityService(t)

			_, _, err := svc.PushCore(context.Background(), "", "", models.CorePushRequest{Case: tt.push})

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestCaseAuthorityService_PushCoreUpdateSkipsCreationRules(t *testing.T) {
	svc, repo := newTestAuthorityService(t)
	push := models.CorePush{ID: 9}

	repo.EXPECT().SaveCore(gomock.Any(), "", "", editedAt, push).Return(models.ServerCase{ID: 9}, false, nil)

	_, _, err := svc.PushCore(context.Background(), "", "", models.CorePushRequest{ChangedAt: editedAt, Case: push})

	require.NoError(t, err)
}

func TestCaseAuthorityService_PushCoreRepositoryError(t *testing.T) {
	svc, repo := newTestAuthorityService(t)
	repo.EXPECT().
		SaveCore(gomock.Any(), "key-1", "fp-2", gomock.Any(), gomock.Any()).
		Return(models.ServerCase{}, false, store.ErrIdempotencyKeyReused)

	_, _, err := svc.PushCore(context.Background(), "key-1", "fp-2", models.CorePushRequest{
		Case: models.CorePush{Name: "Dana", Incident: 40},
	})

	assert.ErrorIs(t, err, store.ErrIdempotencyKeyReused)
}

func TestCaseAuthorityService_SubEntityValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthorityService(t)

	_, err := svc.AddFlag(ctx, 1, models.FlagRequest{Flag: models.Flag{ReasonT: ""}})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.AddNote(ctx, 1, models.NoteRequest{Note: models.Note{Content: " "}})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.SetWorkTypeStatus(ctx, 1, models.WorkTypeStatusRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.Claim(ctx, 1, 0, models.ClaimRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.GetCase(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCaseAuthorityService_AddNoteDefaultsCreationTime(t *testing.T) {
	svc, repo := newTestAuthorityService(t)

	repo.EXPECT().
		AddNote(gomock.Any(), int64(3), models.Note{Content: "Roof tarped", CreatedAt: editedAt}).
		Return(models.ServerNote{ID: 4, Note: "Roof tarped"}, nil)

	note, err := svc.AddNote(context.Background(), 3, models.NoteRequest{
		ChangedAt: editedAt,
		Note:      models.Note{Content: "Roof tarped"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), note.ID)
}

func TestCaseAuthorityService_Claims(t *testing.T) {
	svc, repo := newTestAuthorityService(t)
	org := int64(7)

	repo.EXPECT().SetClaim(gomock.Any(), int64(3), []string{"trees"}, &org).Return(nil)
	repo.EXPECT().SetClaim(gomock.Any(), int64(3), []string{"trees"}, nil).Return(nil)

	require.NoError(t, svc.Claim(context.Background(), 3, 7, models.ClaimRequest{WorkTypes: []string{"trees"}}))
	require.NoError(t, svc.Unclaim(context.Background(), 3, models.ClaimRequest{WorkTypes: []string{"trees"}}))
}

func TestCaseAuthorityService_DeleteFileNeedsCase(t *testing.T) {
	svc, repo := newTestAuthorityService(t)

	repo.EXPECT().GetCase(gomock.Any(), int64(3)).Return(models.ServerCase{ID: 3}, nil)
	repo.EXPECT().GetCase(gomock.Any(), int64(4)).Return(models.ServerCase{}, store.ErrNoCaseWasFound)

	require.NoError(t, svc.DeleteFile(context.Background(), 3, 12))
	assert.ErrorIs(t, svc.DeleteFile(context.Background(), 4, 12), store.ErrNoCaseWasFound)
}
