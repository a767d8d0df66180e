package http

import (
	"net/http"
	"strings"
)

const (
	traceIDHeader    = "X-Trace-ID"
	maxTraceIDLength = 128
)

// withTraceID reuses the caller's X-Trace-ID or mints a new one, echoes it in
// the response and attaches a logger carrying trace_id to the request.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := strings.TrimSpace(r.Header.Get(traceIDHeader))
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = h.newTraceID()
		}

		reqLogger := h.logger.With().Str("trace_id", traceID).Logger()
		w.Header().Set(traceIDHeader, traceID)

		next.ServeHTTP(w, r.WithContext(reqLogger.WithContext(r.Context())))
	})
}
