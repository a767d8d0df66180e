package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/internal/utils"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request. Server errors are
// logged at error level, client errors at warn and the rest at info.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		status := rw.status
		if status == 0 {
			status = http.StatusOK
		}

		event := logger.FromRequest(r).WithLevel(accessLogLevel(status))
		// the principal is attached further down the chain, so it is read
		// from the writer rather than from r
		if rw.principal != nil {
			event = event.Str("username", rw.principal.Username)
		}

		event.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// withPrincipalCapture lets withLogging see who made the request.
func (h *Handler) withPrincipalCapture(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rw, ok := w.(*responseWriter); ok {
			if principal, found := utils.GetPrincipalFromContext(r.Context()); found {
				rw.principal = &principal
			}
		}

		next.ServeHTTP(w, r)
	})
}
