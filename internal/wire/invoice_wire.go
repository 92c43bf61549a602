package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireInvoice(
	r chi.Router,
	invoiceHandler *adaptor.InvoiceHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// POST /api/v1/invoices - Book a room (customers queue for
		// confirmation, staff go straight to awaiting payment)
		r.Post("/invoices", invoiceHandler.CreateBooking)

		// GET /api/v1/invoices/mine - Caller's own booking history
		r.Get("/invoices/mine", invoiceHandler.GetMyInvoices)

		// GET /api/v1/invoices/{id} - Invoice details (owner or staff)
		r.Get("/invoices/{id}", invoiceHandler.GetInvoiceByID)

		// POST /api/v1/invoices/{id}/services - Add a service line
		r.Post("/invoices/{id}/services", invoiceHandler.AddService)

		// PATCH /api/v1/invoices/{id} - Rework an open invoice
		r.Patch("/invoices/{id}", invoiceHandler.UpdateInvoice)
	})

	// ==================== STAFF ROUTES ====================
	r.Route("/admin/invoices", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Staff(log))

		// GET /api/v1/admin/invoices - Paginated ledger across all guests
		r.Get("/", invoiceHandler.GetAllInvoices)

		// PATCH /api/v1/admin/invoices/{id}/status - Drive the lifecycle
		r.Patch("/{id}/status", invoiceHandler.TransitionStatus)

		// PATCH /api/v1/admin/invoices/{id}/pay - Settle the bill
		r.Patch("/{id}/pay", invoiceHandler.RecordPayment)
	})
}
