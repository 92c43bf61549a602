package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/notifier"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Room         *RoomHandler
	Catalog      *CatalogHandler
	Customer     *CustomerHandler
	Invoice      *InvoiceHandler
	Notification *NotificationHandler
}

func NewHandler(service *usecase.Service, hub *notifier.Hub, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Room:         NewRoomHandler(service.Room, log),
		Catalog:      NewCatalogHandler(service.Catalog, log),
		Customer:     NewCustomerHandler(service.Customer, log),
		Invoice:      NewInvoiceHandler(service.Invoice, log),
		Notification: NewNotificationHandler(hub, log),
	}
}

// callerFromContext rebuilds the authenticated caller from what the
// auth middleware stored.
func callerFromContext(r *http.Request) (usecase.Caller, bool) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return usecase.Caller{}, false
	}
	name, _ := utils.GetUserNameFromContext(ctx)
	role, _ := utils.GetRoleFromContext(ctx)

	return usecase.Caller{
		ID:   userID,
		Name: name,
		Role: entity.UserRole(role),
	}, true
}

// handleServiceError maps domain errors onto HTTP status codes. Every
// handler funnels its service failures through here so the taxonomy
// stays in one place.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrRoomNotFound),
		errors.Is(err, usecase.ErrServiceNotFound),
		errors.Is(err, usecase.ErrInvoiceNotFound),
		errors.Is(err, usecase.ErrCustomerNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrRoomUnavailable),
		errors.Is(err, usecase.ErrRoomOccupied),
		errors.Is(err, usecase.ErrRoomNumberTaken),
		errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrVersionConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvoiceTerminal),
		errors.Is(err, usecase.ErrIllegalTransition),
		errors.Is(err, usecase.ErrServiceUnavailable),
		errors.Is(err, usecase.ErrStayNotStarted):
		log.Warn(operation+" failed - invalid state", zap.Error(err))
		utils.ResponseUnprocessable(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidDateRange):
		log.Warn(operation+" failed - bad dates", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - bad credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong, please try again later")
	}
}
