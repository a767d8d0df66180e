// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/internal/utils"
	"github.com/MKhiriev/vibe-vault/models"
)

const (
	ownerQueryParam   = "owner"
	keywordQueryParam = "keyword"
	newNameQueryParam = "newName"
)

// getPlaylists lists every playlist, or only those of ?owner=username.
func (h *Handler) getPlaylists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		playlists []models.PlaylistDTO
		err       error
	)
	if owner := r.URL.Query().Get(ownerQueryParam); owner != "" {
		playlists, err = h.services.PlaylistService.GetPlaylistsByOwner(ctx, owner)
	} else {
		playlists, err = h.services.PlaylistService.GetAllPlaylists(ctx)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, playlists, http.StatusOK)
}

func (h *Handler) searchPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.services.PlaylistService.SearchPlaylists(r.Context(), r.URL.Query().Get(keywordQueryParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, playlists, http.StatusOK)
}

func (h *Handler) getPlaylist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	playlist, err := h.services.PlaylistService.GetPlaylistByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, playlist, http.StatusOK)
}

func (h *Handler) createPlaylist(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	principal, _ := utils.GetPrincipalFromContext(r.Context())

	var request models.PlaylistCreateRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	playlist, err := h.services.PlaylistService.CreatePlaylist(r.Context(), request.Name, principal.Username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, playlist, http.StatusCreated)
}

func (h *Handler) addSong(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	principal, _ := utils.GetPrincipalFromContext(r.Context())

	playlistID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.SongCreateRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	playlist, err := h.services.PlaylistService.AddSongToPlaylist(r.Context(), playlistID, request, principal.Username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, playlist, http.StatusCreated)
}

func (h *Handler) removeSong(w http.ResponseWriter, r *http.Request) {
	principal, _ := utils.GetPrincipalFromContext(r.Context())

	playlistID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	songID, err := pathID(r, "songId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.PlaylistService.RemoveSongFromPlaylist(r.Context(), playlistID, songID, principal.Username); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deletePlaylist(w http.ResponseWriter, r *http.Request) {
	principal, _ := utils.GetPrincipalFromContext(r.Context())

	playlistID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.PlaylistService.DeletePlaylist(r.Context(), playlistID, principal.Username); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) copyPlaylist(w http.ResponseWriter, r *http.Request) {
	principal, _ := utils.GetPrincipalFromContext(r.Context())

	playlistID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	newName := r.URL.Query().Get(newNameQueryParam)
	playlist, err := h.services.PlaylistService.CopyPlaylist(r.Context(), playlistID, newName, principal.Username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, playlist, http.StatusCreated)
}

func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("param", param).Msg("malformed path id")
		return 0, ErrInvalidPathID
	}

	return id, nil
}
