package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/internal/service"
	"github.com/MKhiriev/go-case-sync/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidPathParam: http.StatusBadRequest,
	ErrInvalidJSON:      http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrNoCaseWasFound:       http.StatusNotFound,
	store.ErrNoFlagWasFound:       http.StatusNotFound,
	store.ErrNoFavoriteWasFound:   http.StatusNotFound,
	store.ErrNoWorkTypeWasFound:   http.StatusNotFound,
	store.ErrIdempotencyKeyReused: http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err under fn and answers with the status mapped from it.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	event := log.Warn()
	if status == http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	http.Error(w, err.Error(), status)
}
