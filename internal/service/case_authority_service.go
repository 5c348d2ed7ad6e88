// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/internal/store"
	"github.com/MKhiriev/go-case-sync/models"
)

// caseAuthorityService is the write path of the development server. It
// rejects malformed requests before they reach the repository.
type caseAuthorityService struct {
	cases store.CaseAuthority

	logger *logger.Logger
}

func NewCaseAuthorityService(cases store.CaseAuthority, logger *logger.Logger) CaseAuthorityService {
	return &caseAuthorityService{
		cases:  cases,
		logger: logger,
	}
}

func (s *caseAuthorityService) GetCase(ctx context.Context, caseID int64) (models.ServerCase, error) {
	if caseID <= 0 {
		return models.ServerCase{}, fmt.Errorf("%w: case id %d", ErrInvalidDataProvided, caseID)
	}

	return s.cases.GetCase(ctx, caseID)
}

func (s *caseAuthorityService) PushCore(ctx context.Context, idempotencyKey, fingerprint string, request models.CorePushRequest) (models.ServerCase, bool, error) {
	log := logger.FromContext(ctx)

	if err := validateCorePush(request.Case); err != nil {
		log.Error().Err(err).Str("func", "caseAuthorityService.PushCore").Msg("core push rejected")
		return models.ServerCase{}, false, err
	}

	saved, replayed, err := s.cases.SaveCore(ctx, idempotencyKey, fingerprint, request.ChangedAt, request.Case)
	if err != nil {
		return models.ServerCase{}, false, fmt.Errorf("save core: %w", err)
	}

	log.Info().
		Str("func", "caseAuthorityService.PushCore").
		Int64("case_id", saved.ID).
		Bool("replayed", replayed).
		Msg("core pushed")

	return saved, replayed, nil
}

// validateCorePush checks what a new case needs. Updates may carry any value
// since the client diffed them against the stored case.
func validateCorePush(push models.CorePush) error {
	if push.ID < 0 {
		return fmt.Errorf("%w: case id %d", ErrInvalidDataProvided, push.ID)
	}
	if push.ID > 0 {
		return nil
	}
	if push.Incident <= 0 {
		return fmt.Errorf("%w: new case without incident", ErrInvalidDataProvided)
	}
	if strings.TrimSpace(push.Name) == "" {
		return fmt.Errorf("%w: new case without name", ErrInvalidDataProvided)
	}
	return nil
}

func (s *caseAuthorityService) SetFavorite(ctx context.Context, caseID int64) (models.ServerFavorite, error) {
	return s.cases.SetFavorite(ctx, caseID)
}

func (s *caseAuthorityService) ClearFavorite(ctx context.Context, caseID, favoriteID int64) error {
	return s.cases.ClearFavorite(ctx, caseID, favoriteID)
}

func (s *caseAuthorityService) AddFlag(ctx context.Context, caseID int64, request models.FlagRequest) (models.ServerFlag, error) {
	if strings.TrimSpace(request.Flag.ReasonT) == "" {
		return models.ServerFlag{}, fmt.Errorf("%w: flag without reason", ErrInvalidDataProvided)
	}

	return s.cases.AddFlag(ctx, caseID, request.ChangedAt, request.Flag)
}

func (s *caseAuthorityService) DeleteFlag(ctx context.Context, caseID, flagID int64) error {
	return s.cases.DeleteFlag(ctx, caseID, flagID)
}

func (s *caseAuthorityService) AddNote(ctx context.Context, caseID int64, request models.NoteRequest) (models.ServerNote, error) {
	if strings.TrimSpace(request.Note.Content) == "" {
		return models.ServerNote{}, fmt.Errorf("%w: empty note", ErrInvalidDataProvided)
	}

	note := request.Note
	if note.CreatedAt.IsZero() {
		note.CreatedAt = request.ChangedAt
	}

	return s.cases.AddNote(ctx, caseID, note)
}

// DeleteFile accepts the removal of a file of an existing case. Files are
// not stored by the development server.
func (s *caseAuthorityService) DeleteFile(ctx context.Context, caseID, fileID int64) error {
	if _, err := s.cases.GetCase(ctx, caseID); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "caseAuthorityService.DeleteFile").
		Int64("case_id", caseID).
		Int64("file_id", fileID).
		Msg("file deleted")
	return nil
}

func (s *caseAuthorityService) SetWorkTypeStatus(ctx context.Context, workTypeID int64, request models.WorkTypeStatusRequest) (models.ServerWorkType, error) {
	if strings.TrimSpace(request.Status) == "" {
		return models.ServerWorkType{}, fmt.Errorf("%w: empty work type status", ErrInvalidDataProvided)
	}

	return s.cases.SetWorkTypeStatus(ctx, workTypeID, request.Status)
}

func (s *caseAuthorityService) DeleteWorkType(ctx context.Context, workTypeID int64) error {
	return s.cases.DeleteWorkType(ctx, workTypeID)
}

func (s *caseAuthorityService) Claim(ctx context.Context, caseID, orgID int64, request models.ClaimRequest) error {
	if orgID <= 0 {
		return fmt.Errorf("%w: claim without organization", ErrInvalidDataProvided)
	}

	return s.cases.SetClaim(ctx, caseID, request.WorkTypes, &orgID)
}

func (s *caseAuthorityService) Unclaim(ctx context.Context, caseID int64, request models.ClaimRequest) error {
	return s.cases.SetClaim(ctx, caseID, request.WorkTypes, nil)
}
