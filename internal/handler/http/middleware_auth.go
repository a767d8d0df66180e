package http

import (
	"net/http"

	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/internal/utils"
)

const authorizationHeader = "Authorization"

// authenticate resolves the caller from an optional bearer token.
//
// A valid token whose subject still exists attaches a [models.Principal] to
// the request context via [utils.WithPrincipal]; the principal's role is read
// from storage, not from the token. A missing, malformed, expired or otherwise
// invalid token leaves the request anonymous: rejecting it is the job of
// [Handler.requireAuth], so public endpoints keep working.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get(authorizationHeader)
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("ignoring malformed authorization header")
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("ignoring invalid token")
			next.ServeHTTP(w, r)
			return
		}

		principal, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			log.Debug().Err(err).Str("username", token.Username).Msg("token subject could not be authenticated")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
	})
}

// requireAuth rejects anonymous requests with 401 Unauthorized.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetPrincipalFromContext(r.Context()); !ok {
			writeError(w, r, ErrAuthenticationRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
