package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/vibe-vault/internal/logger"
)

// withRecover turns a panic in a later handler into the usual JSON 500.
// http.ErrAbortHandler is re-raised so net/http can abort the response.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			writeError(w, r, fmt.Errorf("%w: %v", errHandlerPanicked, rec))
		}()

		next.ServeHTTP(w, r)
	})
}
