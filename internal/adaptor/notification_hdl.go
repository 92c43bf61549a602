package adaptor

import (
	"net/http"

	"hotel-booking/internal/notifier"

	"go.uber.org/zap"
)

type NotificationHandler struct {
	hub *notifier.Hub
	log *zap.Logger
}

func NewNotificationHandler(hub *notifier.Hub, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		hub: hub,
		log: log.With(zap.String("handler", "notification")),
	}
}

// Subscribe handles GET /api/v1/ws/notifications (staff only). The
// connection is upgraded to a websocket; the hub fails the upgrade
// itself, so there is nothing to write on error.
func (h *NotificationHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if err := h.hub.ServeWS(w, r); err != nil {
		h.log.Warn("Websocket upgrade failed", zap.Error(err))
	}
}
