package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-case-sync/internal/adapter"
	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/internal/utils"
	"github.com/MKhiriev/go-case-sync/models"
	"github.com/go-chi/chi/v5"
)

// IdempotentReplayHeader is set on a core push answered from an earlier
// request with the same idempotency key.
const IdempotentReplayHeader = "X-Idempotent-Replay"

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathParam, name, raw)
	}
	return id, nil
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func (h *Handler) getCase(w http.ResponseWriter, r *http.Request) {
	caseID, err := pathID(r, "caseID")
	if err != nil {
		writeError(w, r, "*Handler.getCase", err)
		return
	}

	serverCase, err := h.services.CaseAuthorityService.GetCase(r.Context(), caseID)
	if err != nil {
		writeError(w, r, "*Handler.getCase", err)
		return
	}

	utils.WriteJSON(w, serverCase, http.StatusOK)
}

func (h *Handler) pushCore(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.CorePushRequest
	if err := decodeBody(r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.pushCore").Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	idempotencyKey := r.Header.Get(adapter.IdempotencyKeyHeader)
	fingerprint, _ := bodyFingerprintFromContext(r.Context())
	saved, replayed, err := h.services.CaseAuthorityService.PushCore(r.Context(), idempotencyKey, fingerprint, request)
	if err != nil {
		writeError(w, r, "*Handler.pushCore", err)
		return
	}

	status := http.StatusOK
	switch {
	case replayed:
		w.Header().Set(IdempotentReplayHeader, "true")
	case request.Case.ID == 0:
		status = http.StatusCreated
	}

	utils.WriteJSON(w, saved, status)
}

func (h *Handler) setFavorite(w http.ResponseWriter, r *http.Request) {
	caseID, err := pathID(r, "caseID")
	if err != nil {
		writeError(w, r, "*Handler.setFavorite", err)
		return
	}

	favorite, err := h.services.CaseAuthorityService.SetFavorite(r.Context(), caseID)
	if err != nil {
		writeError(w, r, "*Handler.setFavorite", err)
		return
	}

	utils.WriteJSON(w, favorite, http.StatusOK)
}

func (h *Handler) clearFavorite(w http.ResponseWriter, r *http.Request) {
	caseID, err := pathID(r, "caseID")
	if err != nil {
		writeError(w, r, "*Handler.clearFavorite", err)
		return
	}
	favoriteID, err := pathID(r, "favoriteID")
	if err != nil {
		writeError(w, r, "*Handler.clearFavorite", err)
		return
	}

	if err = h.services.CaseAuthorityService.ClearFavorite(r.Context(), caseID, favoriteID); err != nil {
		writeError(w, r, "*Handler.clearFavorite", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addFlag(w http.ResponseWriter, r *http.Request) {
	caseID, err := pathID(r, "caseID")
	if err != nil {
		writeError(w, r, "*Handler.addFlag", err)
		return
	}

	var request models.FlagRequest
	if err = decodeBody(r, &request); err != nil {
		writeError(w, r, "*Handler.addFlag", err)
		return
	}

	flag, err := h.services.CaseAuthorityService.AddFlag(r.Context(), caseID, request)
	if err != nil {
		writeError(w, r, "*Handler.addFlag", err)
		return
	}

	utils.WriteJSON(w, flag, http.StatusCreated)
}

func (h *Handler) deleteFlag(w http.ResponseWriter, r *http.Request) {
	caseID, err := pathID(r, "caseID")
	if err != nil {
		writeError(w, r, "*Handler.deleteFlag", err)
		return
	}
	flagID, err := pathID(r, "flagID")
	if err != nil {
		writeError(w, r, "*Handler.deleteFlag", err)
		return
	}

	if err = h.services.CaseAuthorityService.DeleteFlag(r.Context(), caseID, flagID); err != nil {
		writeError(w, r, "*Handler.deleteFlag", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	caseID, err := pathID(r, "caseID")
	if err != nil {
		writeError(w, r, "*Handler.addNote", err)
		return
	}

	var request models.NoteRequest
	if err = decodeBody(r, &request); err != nil {
		writeError(w, r, "*Handler.addNote", err)
		return
	}

	note, err := h.services.CaseAuthorityService.AddNote(r.Context(), caseID, request)
	if err != nil {
		writeError(w, r, "*Handler.addNote", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	caseID, err := pathID(r, "caseID")
	if err != nil {
		writeError(w, r, "*Handler.deleteFile", err)
		return
	}
	fileID, err := pathID(r, "fileID")
	if err != nil {
		writeError(w, r, "*Handler.deleteFile", err)
		return
	}

	if err = h.services.CaseAuthorityService.DeleteFile(r.Context(), caseID, fileID); err != nil {
		writeError(w, r, "*Handler.deleteFile", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) claim(w http.ResponseWriter, r *http.Request) {
	caseID, err := pathID(r, "caseID")
	if err != nil {
		writeError(w, r, "*Handler.claim", err)
		return
	}

	var request models.ClaimRequest
	if err = decodeBody(r, &request); err != nil {
		writeError(w, r, "*Handler.claim", err)
		return
	}

	orgID, _ := utils.GetOrgIDFromContext(r.Context())
	if err = h.services.CaseAuthorityService.Claim(r.Context(), caseID, orgID, request); err != nil {
		writeError(w, r, "*Handler.claim", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unclaim(w http.ResponseWriter, r *http.Request) {
	caseID, err := pathID(r, "caseID")
	if err != nil {
		writeError(w, r, "*Handler.unclaim", err)
		return
	}

	var request models.ClaimRequest
	if err = decodeBody(r, &request); err != nil {
		writeError(w, r, "*Handler.unclaim", err)
		return
	}

	if err = h.services.CaseAuthorityService.Unclaim(r.Context(), caseID, request); err != nil {
		writeError(w, r, "*Handler.unclaim", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
