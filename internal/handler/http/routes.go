package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.authenticate, h.withPrincipalCapture)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/version", h.getServerVersion)

		r.Route("/playlists", func(r chi.Router) {
			r.Get("/", h.getPlaylists)
			r.Get("/search", h.searchPlaylists)
			r.Get("/{id}", h.getPlaylist)

			// routes with authorization
			r.Group(func(r chi.Router) {
				r.Use(h.requireAuth)

				r.Post("/", h.createPlaylist)
				r.Delete("/{id}", h.deletePlaylist)
				r.Post("/{id}/songs", h.addSong)
				r.Delete("/{id}/songs/{songId}", h.removeSong)
				r.Post("/{id}/copy", h.copyPlaylist)
			})
		})
	})

	return router
}
