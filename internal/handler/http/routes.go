package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getVersion)

	router.Post("/api/sync", h.syncAll)
	router.Post("/api/retries/run", h.retryFailed)

	router.Route("/api/vaults", func(r chi.Router) {
		r.Get("/", h.listVaults)

		r.Route("/{vaultID}", func(r chi.Router) {
			r.Get("/", h.getVault)
			r.Put("/", h.saveVault)

			r.Post("/sync", h.syncVault)
			r.Delete("/sync", h.cancelSync)
			r.Post("/resync", h.forceResync)
			r.Post("/push", h.pushChanges)
			r.Post("/pull", h.pullChanges)
			r.Post("/conflicts/resolve", h.resolveConflicts)
			r.Get("/progress", h.getProgress)

			r.Get("/states", h.listSyncStates)
			r.Get("/retries", h.listRetries)
			r.Post("/forget-synced", h.forgetSynced)
			r.Post("/reset-errors", h.resetErrors)
		})
	})

	router.Route("/api/notes/{noteID}", func(r chi.Router) {
		r.Put("/", h.trackNote)
		r.Post("/sync", h.syncNote)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
