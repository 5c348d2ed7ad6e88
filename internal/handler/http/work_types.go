package http

import (
	"net/http"

	"github.com/MKhiriev/go-case-sync/internal/utils"
	"github.com/MKhiriev/go-case-sync/models"
)

func (h *Handler) setWorkTypeStatus(w http.ResponseWriter, r *http.Request) {
	workTypeID, err := pathID(r, "workTypeID")
	if err != nil {
		writeError(w, r, "*Handler.setWorkTypeStatus", err)
		return
	}

	var request models.WorkTypeStatusRequest
	if err = decodeBody(r, &request); err != nil {
		writeError(w, r, "*Handler.setWorkTypeStatus", err)
		return
	}

	updated, err := h.services.CaseAuthorityService.SetWorkTypeStatus(r.Context(), workTypeID, request)
	if err != nil {
		writeError(w, r, "*Handler.setWorkTypeStatus", err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteWorkType(w http.ResponseWriter, r *http.Request) {
	workTypeID, err := pathID(r, "workTypeID")
	if err != nil {
		writeError(w, r, "*Handler.deleteWorkType", err)
		return
	}

	if err = h.services.CaseAuthorityService.DeleteWorkType(r.Context(), workTypeID); err != nil {
		writeError(w, r, "*Handler.deleteWorkType", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
