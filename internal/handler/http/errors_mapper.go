package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/internal/service"
	"github.com/MKhiriev/vibe-vault/internal/store"
	"github.com/MKhiriev/vibe-vault/internal/utils"
	"github.com/MKhiriev/vibe-vault/internal/validators"
	"github.com/MKhiriev/vibe-vault/models"
)

const (
	validationFailedMessage = "Validation failed"
	internalErrorMessage    = "An unexpected error occurred"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation:       http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrInvalidPathID:               http.StatusBadRequest,

	ErrAuthenticationRequired:          http.StatusUnauthorized,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrForbidden: http.StatusForbidden,

	service.ErrResourceNotFound: http.StatusNotFound,
	store.ErrPlaylistNotFound:   http.StatusNotFound,
	store.ErrSongNotFound:       http.StatusNotFound,
	ErrRouteNotFound:            http.StatusNotFound,

	ErrMethodNotAllowed: http.StatusMethodNotAllowed,

	store.ErrUsernameAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if target := matchedError(err); target != nil {
		return errorStatusMap[target]
	}
	return http.StatusInternalServerError
}

func matchedError(err error) error {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target
		}
	}
	return nil
}

// messageFromError returns the text shown to API clients. Internal failures
// are never echoed back. For known errors the sentinel prefix is stripped,
// so "resource not found: Playlist not found with id: 5" is reported as
// "Playlist not found with id: 5".
func messageFromError(err error) string {
	target := matchedError(err)
	if target == nil || errorStatusMap[target] >= http.StatusInternalServerError {
		return internalErrorMessage
	}

	msg := err.Error()
	if i := strings.LastIndex(msg, target.Error()+": "); i >= 0 {
		return msg[i+len(target.Error())+2:]
	}

	return target.Error()
}

// writeError renders err as a models.ErrorResponse.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	response := models.ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   messageFromError(err),
	}

	var fieldErrors validators.FieldErrors
	if errors.As(err, &fieldErrors) {
		response.Message = validationFailedMessage
		response.Details = fieldErrors
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, err := utils.WriteJSON(w, response, status); err != nil {
		log.Err(err).Msg("error writing error response")
	}
}
