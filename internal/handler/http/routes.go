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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/cases", func(r chi.Router) {
			r.With(h.withBodyFingerprint).Post("/", h.pushCore)

			r.Route("/{caseID}", func(r chi.Router) {
				r.Get("/", h.getCase)

				r.Post("/favorite", h.setFavorite)
				r.Delete("/favorite/{favoriteID}", h.clearFavorite)

				r.Post("/flags", h.addFlag)
				r.Delete("/flags/{flagID}", h.deleteFlag)

				r.Post("/notes", h.addNote)
				r.Delete("/files/{fileID}", h.deleteFile)

				r.Post("/claim", h.claim)
				r.Post("/unclaim", h.unclaim)
			})
		})

		r.Route("/api/work-types/{workTypeID}", func(r chi.Router) {
			r.Patch("/", h.setWorkTypeStatus)
			r.Delete("/", h.deleteWorkType)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
