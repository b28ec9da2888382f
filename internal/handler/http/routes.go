package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withActingUser)

	router.Route("/api/notes", func(r chi.Router) {
		r.Post("/", h.createNote)

		r.Route("/{reference}", func(r chi.Router) {
			r.Get("/", h.getNote)
			r.Post("/", h.createNamedNote)
			r.Delete("/", h.deleteNote)
			r.Get("/media", h.listMedia)
			r.Get("/download", h.downloadNote)

			r.Route("/revisions", func(r chi.Router) {
				r.Get("/", h.listRevisions)
				r.Get("/{seq}", h.getRevision)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
