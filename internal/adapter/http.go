package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-case-sync/internal/config"
	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/internal/utils"
	"github.com/MKhiriev/go-case-sync/models"
	"github.com/go-resty/resty/v2"
)

// IdempotencyKeyHeader carries the sync token of the queued change on core
// pushes.
const IdempotencyKeyHeader = "X-Idempotency-Key"

// tokenExpiryLeeway is subtracted from the token expiration so a token that
// expires mid-sync is treated as expired up front.
const tokenExpiryLeeway = 10 * time.Second

type httpCaseAdapter struct {
	client *utils.HTTPClient

	healthTimeout time.Duration
	now           func() time.Time

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCaseAdapter constructs an HTTP/REST implementation of [CaseAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and stores the session token from appCfg.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCaseAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (CaseAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	healthTimeout := adapterCfg.HealthTimeout
	if healthTimeout <= 0 {
		healthTimeout = config.DefaultHealthTimeout
	}

	a := &httpCaseAdapter{
		client:        client,
		healthTimeout: healthTimeout,
		now:           time.Now,
		logger:        logger,
	}
	a.SetToken(appCfg.SessionToken)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [CaseAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpCaseAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [CaseAdapter].
func (h *httpCaseAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// IsOffline implements [SyncConditions]. It checks GET /api/health with the
// health timeout. The remote counts as offline when no response arrives or a
// gateway in front of it reports the upstream unavailable.
func (h *httpCaseAdapter) IsOffline(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, h.healthTimeout)
	defer cancel()

	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		h.logger.Debug().Err(err).Str("func", "httpCaseAdapter.IsOffline").Msg("health check failed")
		return true
	}

	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// IsSessionTokenValid implements [SyncConditions]. The token must be present
// and its "exp" claim must lie in the future.
func (h *httpCaseAdapter) IsSessionTokenValid() bool {
	token := h.Token()
	if token == "" {
		return false
	}

	exp, err := utils.TokenExpiresAt(token)
	if err != nil {
		h.logger.Debug().Err(err).Str("func", "httpCaseAdapter.IsSessionTokenValid").Msg("unreadable session token")
		return false
	}

	return h.now().Add(tokenExpiryLeeway).Before(exp)
}

// FetchCase implements [CaseReader] via GET /api/cases/{caseID}.
func (h *httpCaseAdapter) FetchCase(ctx context.Context, serverID int64) (models.ServerCase, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("caseID", strconv.FormatInt(serverID, 10)).
		Get("/api/cases/{caseID}")
	if err != nil {
		return models.ServerCase{}, mapTransportError("fetch case", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerCase{}, err
	}

	var serverCase models.ServerCase
	if err = json.Unmarshal(resp.Body(), &serverCase); err != nil {
		return models.ServerCase{}, fmt.Errorf("decode fetch case response: %w", err)
	}

	return serverCase, nil
}

// PushCore implements [CaseWriter] via POST /api/cases. The idempotency key
// travels in the X-Idempotency-Key header.
func (h *httpCaseAdapter) PushCore(ctx context.Context, changedAt time.Time, idempotencyKey string, push models.CorePush) (models.ServerCase, error) {
	req := h.authedRequest(ctx).
		SetBody(models.CorePushRequest{ChangedAt: changedAt, Case: push})
	if idempotencyKey != "" {
		req.SetHeader(IdempotencyKeyHeader, idempotencyKey)
	}

	resp, err := req.Post("/api/cases")
	if err != nil {
		return models.ServerCase{}, mapTransportError("push core", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerCase{}, err
	}

	var serverCase models.ServerCase
	if err = json.Unmarshal(resp.Body(), &serverCase); err != nil {
		return models.ServerCase{}, fmt.Errorf("decode push core response: %w", err)
	}

	return serverCase, nil
}

// SetFavorite implements [CaseWriter] via POST /api/cases/{caseID}/favorite.
func (h *httpCaseAdapter) SetFavorite(ctx context.Context, changedAt time.Time, serverID int64) error {
	resp, err := h.caseRequest(ctx, serverID).
		SetBody(models.ChangedAtRequest{ChangedAt: changedAt}).
		Post("/api/cases/{caseID}/favorite")
	if err != nil {
		return mapTransportError("set favorite", err)
	}

	return mapHTTPError(resp)
}

// ClearFavorite implements [CaseWriter] via
// DELETE /api/cases/{caseID}/favorite/{favoriteID}.
func (h *httpCaseAdapter) ClearFavorite(ctx context.Context, changedAt time.Time, serverID, favoriteID int64) error {
	resp, err := h.caseRequest(ctx, serverID).
		SetPathParam("favoriteID", strconv.FormatInt(favoriteID, 10)).
		SetBody(models.ChangedAtRequest{ChangedAt: changedAt}).
		Delete("/api/cases/{caseID}/favorite/{favoriteID}")
	if err != nil {
		return mapTransportError("clear favorite", err)
	}

	return mapHTTPError(resp)
}

// AddFlag implements [CaseWriter] via POST /api/cases/{caseID}/flags.
func (h *httpCaseAdapter) AddFlag(ctx context.Context, changedAt time.Time, serverID int64, flag models.Flag) (models.ServerFlag, error) {
	resp, err := h.caseRequest(ctx, serverID).
		SetBody(models.FlagRequest{ChangedAt: changedAt, Flag: flag}).
		Post("/api/cases/{caseID}/flags")
	if err != nil {
		return models.ServerFlag{}, mapTransportError("add flag", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerFlag{}, err
	}

	var added models.ServerFlag
	if err = json.Unmarshal(resp.Body(), &added); err != nil {
		return models.ServerFlag{}, fmt.Errorf("decode add flag response: %w", err)
	}

	return added, nil
}

// DeleteFlag implements [CaseWriter] via
// DELETE /api/cases/{caseID}/flags/{flagID}.
func (h *httpCaseAdapter) DeleteFlag(ctx context.Context, changedAt time.Time, serverID, flagID int64) error {
	resp, err := h.caseRequest(ctx, serverID).
		SetPathParam("flagID", strconv.FormatInt(flagID, 10)).
		SetBody(models.ChangedAtRequest{ChangedAt: changedAt}).
		Delete("/api/cases/{caseID}/flags/{flagID}")
	if err != nil {
		return mapTransportError("delete flag", err)
	}

	return mapHTTPError(resp)
}

// AddNote implements [CaseWriter] via POST /api/cases/{caseID}/notes.
func (h *httpCaseAdapter) AddNote(ctx context.Context, changedAt time.Time, serverID int64, note models.Note) (models.ServerNote, error) {
	resp, err := h.caseRequest(ctx, serverID).
		SetBody(models.NoteRequest{ChangedAt: changedAt, Note: note}).
		Post("/api/cases/{caseID}/notes")
	if err != nil {
		return models.ServerNote{}, mapTransportError("add note", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerNote{}, err
	}

	var added models.ServerNote
	if err = json.Unmarshal(resp.Body(), &added); err != nil {
		return models.ServerNote{}, fmt.Errorf("decode add note response: %w", err)
	}

	return added, nil
}

// DeleteFile implements [CaseWriter] via
// DELETE /api/cases/{caseID}/files/{fileID}.
func (h *httpCaseAdapter) DeleteFile(ctx context.Context, changedAt time.Time, serverID, fileID int64) error {
	resp, err := h.caseRequest(ctx, serverID).
		SetPathParam("fileID", strconv.FormatInt(fileID, 10)).
		SetBody(models.ChangedAtRequest{ChangedAt: changedAt}).
		Delete("/api/cases/{caseID}/files/{fileID}")
	if err != nil {
		return mapTransportError("delete file", err)
	}

	return mapHTTPError(resp)
}

// SetWorkTypeStatus implements [CaseWriter] via PATCH /api/work-types/{workTypeID}.
func (h *httpCaseAdapter) SetWorkTypeStatus(ctx context.Context, changedAt time.Time, workTypeID int64, status string) (models.ServerWorkType, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("workTypeID", strconv.FormatInt(workTypeID, 10)).
		SetBody(models.WorkTypeStatusRequest{ChangedAt: changedAt, Status: status}).
		Patch("/api/work-types/{workTypeID}")
	if err != nil {
		return models.ServerWorkType{}, mapTransportError("set work type status", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerWorkType{}, err
	}

	var updated models.ServerWorkType
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.ServerWorkType{}, fmt.Errorf("decode work type status response: %w", err)
	}

	return updated, nil
}

// DeleteWorkType implements [CaseWriter] via DELETE /api/work-types/{workTypeID}.
func (h *httpCaseAdapter) DeleteWorkType(ctx context.Context, changedAt time.Time, workTypeID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("workTypeID", strconv.FormatInt(workTypeID, 10)).
		SetBody(models.ChangedAtRequest{ChangedAt: changedAt}).
		Delete("/api/work-types/{workTypeID}")
	if err != nil {
		return mapTransportError("delete work type", err)
	}

	return mapHTTPError(resp)
}

// ClaimWorkTypes implements [CaseWriter] via POST /api/cases/{caseID}/claim.
// Returns [ErrEmptyWorkTypeList] without a request when typeKeys is empty.
func (h *httpCaseAdapter) ClaimWorkTypes(ctx context.Context, changedAt time.Time, serverID int64, typeKeys []string) error {
	return h.claimRequest(ctx, changedAt, serverID, typeKeys, "/api/cases/{caseID}/claim", "claim work types")
}

// UnclaimWorkTypes implements [CaseWriter] via POST /api/cases/{caseID}/unclaim.
// Returns [ErrEmptyWorkTypeList] without a request when typeKeys is empty.
func (h *httpCaseAdapter) UnclaimWorkTypes(ctx context.Context, changedAt time.Time, serverID int64, typeKeys []string) error {
	return h.claimRequest(ctx, changedAt, serverID, typeKeys, "/api/cases/{caseID}/unclaim", "unclaim work types")
}

func (h *httpCaseAdapter) claimRequest(ctx context.Context, changedAt time.Time, serverID int64, typeKeys []string, path, op string) error {
	if len(typeKeys) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyWorkTypeList)
	}

	resp, err := h.caseRequest(ctx, serverID).
		SetBody(models.ClaimRequest{ChangedAt: changedAt, WorkTypes: typeKeys}).
		Post(path)
	if err != nil {
		return mapTransportError(op, err)
	}

	return mapHTTPError(resp)
}

func (h *httpCaseAdapter) caseRequest(ctx context.Context, serverID int64) *resty.Request {
	return h.authedRequest(ctx).SetPathParam("caseID", strconv.FormatInt(serverID, 10))
}

func (h *httpCaseAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
