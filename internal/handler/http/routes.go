package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(api chi.Router) {
		// imports run to completion, outside the request timeout
		api.Post("/imports", h.importDocuments)

		api.Group(func(r chi.Router) {
			if h.requestTimeout > 0 {
				r.Use(middleware.Timeout(h.requestTimeout))
			}

			h.timedRoutes(r)
		})
	})

	return router
}

func (h *Handler) timedRoutes(r chi.Router) {
	r.Get("/version", h.getServerVersion)
	r.Get("/search", h.search)

	r.Route("/panels/{panel}/folders", func(r chi.Router) {
		r.Get("/", h.listFolders)
		r.Post("/", h.createFolder)
	})

	r.Route("/folders/{id}", func(r chi.Router) {
		r.Get("/files", h.listFiles)
		r.Get("/count", h.countFiles)
	})

	r.Route("/objects/{name}", func(r chi.Router) {
		r.Get("/", h.describeObject)
		r.Delete("/", h.deleteObject)
		r.Post("/view", h.viewObject)
	})
}
