package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	router.Use(middleware.StripSlashes)

	router.Get("/", h.getStatus)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/notes", func(r chi.Router) {
		r.Get("/", h.listNotes)
		r.Post("/", h.createNote)
		r.Get("/{id}", h.getNote)
		r.Put("/{id}", h.updateNote)
		r.Delete("/{id}", h.deleteNote)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
