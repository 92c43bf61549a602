// internal/wire/wire.go
package wire

import (
	"net/http"

	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/notifier"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
	Hub    *notifier.Hub
}

// Wiring assembles repositories, services, and handlers into a router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	hub := notifier.NewHub(logger)

	service := usecase.NewService(repo, config, hub, logger)
	handler := adaptor.NewHandler(service, hub, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
		Hub:    hub,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	r.Route("/api/v1", func(r chi.Router) {
		wireAuth(r, handler.Auth)
		wireRoom(r, handler.Room, config, logger)
		wireCatalog(r, handler.Catalog, config, logger)
		wireCustomer(r, handler.Customer, config, logger)
		wireInvoice(r, handler.Invoice, config, logger)
		wireNotification(r, handler.Notification, config, logger)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
