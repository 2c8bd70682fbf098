package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Post("/scan", h.scan)
		r.Post("/classify", h.classify)

		r.Route("/generate", func(r chi.Router) {
			r.Post("/", h.generate)
			r.Post("/png", h.generatePNG)
		})

		r.Route("/history", func(r chi.Router) {
			r.Get("/", h.listHistory)
			r.Delete("/", h.clearHistory)
			r.Get("/export.csv", h.exportHistoryCSV)
			r.Get("/export.json", h.exportHistoryJSON)
			r.Post("/import.json", h.importHistoryJSON)
			r.Get("/{id}", h.getHistoryEntry)
			r.Get("/{id}/file", h.getHistoryFile)
		})

		r.Get("/version/", h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
