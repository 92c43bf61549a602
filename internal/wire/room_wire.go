package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/v1/rooms - Browse visible rooms
	r.Get("/rooms", roomHandler.GetRooms)

	// GET /api/v1/rooms/{id} - Room details with occupancy
	r.Get("/rooms/{id}", roomHandler.GetRoomByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/admin/rooms", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Staff(log))

		// GET /api/v1/admin/rooms - Full listing, hidden rooms included
		r.Get("/", roomHandler.GetAllRooms)

		// Mutations require the admin role on top of staff.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Admin(log))

			// POST /api/v1/admin/rooms - Add a room
			r.Post("/", roomHandler.CreateRoom)

			// PATCH /api/v1/admin/rooms/{id} - Edit room details
			r.Patch("/{id}", roomHandler.UpdateRoom)

			// DELETE /api/v1/admin/rooms/{id} - Remove a room (blocked while occupied)
			r.Delete("/{id}", roomHandler.DeleteRoom)
		})
	})
}
