package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/vibe-vault/internal/logger"
)

// getServerVersion answers GET /api/version with the configured version as
// plain text. It is public and never fails.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := io.WriteString(w, version); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("failed to write version response")
	}
}
