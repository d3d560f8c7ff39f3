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

	router.Route("/api/settings", func(r chi.Router) {
		r.Get("/criteria", h.getSearchCriteria)
		r.Patch("/criteria", h.updateSearchCriteria)

		r.Get("/locations", h.getLocations)
		r.Post("/locations", h.addLocation)
		r.Delete("/locations/{name}", h.removeLocation)

		r.Get("/price-range", h.getPriceRange)
		r.Put("/price-range", h.updatePriceRange)

		r.Get("/property-types", h.getPropertyTypes)
		r.Put("/property-types", h.updatePropertyTypes)

		r.Get("/integration", h.getIntegration)
	})

	return router
}
