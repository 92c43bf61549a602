package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/v1/services - Browse bookable services
	r.Get("/services", catalogHandler.GetServices)

	// GET /api/v1/services/{id} - Service details
	r.Get("/services/{id}", catalogHandler.GetServiceByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/admin/services", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Staff(log))

		// GET /api/v1/admin/services - Full catalog, withdrawn entries included
		r.Get("/", catalogHandler.GetAllServices)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Admin(log))

			// POST /api/v1/admin/services - Add a catalog entry
			r.Post("/", catalogHandler.CreateService)

			// PATCH /api/v1/admin/services/{id} - Edit or withdraw an entry
			r.Patch("/{id}", catalogHandler.UpdateService)

			// DELETE /api/v1/admin/services/{id} - Remove an entry
			r.Delete("/{id}", catalogHandler.DeleteService)
		})
	})
}
