package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging)
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errRouteNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errMethodNotAllowed)
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getVersion)

		r.Route("/session", func(r chi.Router) {
			r.Post("/ping", h.pingSession)
			r.Get("/status", h.sessionStatus)
		})

		r.Post("/collections/{serverID}/sync", h.syncCollection)
		r.Post("/attachments/{attachmentID}/fetch", h.fetchAttachment)
	})

	return router
}
