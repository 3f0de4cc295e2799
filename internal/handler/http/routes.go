package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// sync protocol, read only
	router.Group(func(r chi.Router) {
		r.Get("/api/bundle", h.bundle)
		r.Get("/api/species/changes", h.changes)
		r.Get("/api/species/incremental", h.incremental)
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	// catalogue writes; ids are digits only so /api/species/changes and
	// friends never fall into the {id} routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/species/{id:[0-9]+}", h.putSpecies)
		r.Delete("/api/species/{id:[0-9]+}", h.deleteSpecies)

		r.Post("/api/media", h.createMedia)
		r.Put("/api/media/{id:[0-9]+}", h.updateMedia)
		r.Delete("/api/media/{id:[0-9]+}", h.deleteMedia)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
