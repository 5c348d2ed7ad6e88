package http

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/internal/utils"
)

type fingerprintCtxKey struct{}

// withBodyFingerprint stores an HMAC of the raw request body in the request
// context. The body is restored for the next handler.
func (h *Handler) withBodyFingerprint(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withBodyFingerprint").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		fingerprint := utils.HashString(string(body), h.fingerprintKey)
		log.Debug().Str("func", "*Handler.withBodyFingerprint").Str("fingerprint", fingerprint).Send()

		ctx := context.WithValue(r.Context(), fingerprintCtxKey{}, fingerprint)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bodyFingerprintFromContext(ctx context.Context) (string, bool) {
	fingerprint, ok := ctx.Value(fingerprintCtxKey{}).(string)
	return fingerprint, ok
}
