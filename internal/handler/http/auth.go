package http

import (
	"net/http"

	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/internal/utils"
	"github.com/MKhiriev/vibe-vault/models"
)

const registeredMessage = "User registered successfully"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.ID).Str("username", registeredUser.Username).Msg("user registered")
	utils.WriteJSON(w, models.RegisterResponse{Message: registeredMessage, Username: registeredUser.Username}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString, Username: foundUser.Username}, http.StatusOK)
}
