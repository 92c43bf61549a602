package usecase

import (
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Caller is the authenticated identity behind a request, as extracted
// from the bearer token.
type Caller struct {
	ID   uuid.UUID
	Name string
	Role entity.UserRole
}

type Service struct {
	Auth     AuthService
	Room     RoomService
	Catalog  CatalogService
	Customer CustomerService
	Invoice  InvoiceService
}

func NewService(repo *repository.Repository, config *utils.Config, events Notifier, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Room:     NewRoomService(repo, log),
		Catalog:  NewCatalogService(repo.Service, log),
		Customer: NewCustomerService(repo.Customer, log),
		Invoice:  NewInvoiceService(repo, events, log),
	}
}
