package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCustomer(
	r chi.Router,
	customerHandler *adaptor.CustomerHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== STAFF ROUTES ====================
	r.Route("/admin/customers", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Staff(log))

		// GET /api/v1/admin/customers - Paginated guest directory
		r.Get("/", customerHandler.GetCustomers)

		// GET /api/v1/admin/customers/{id} - Guest details
		r.Get("/{id}", customerHandler.GetCustomerByID)
	})
}
