package repository

import (
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Room     RoomRepository
	Customer CustomerRepository
	Service  ServiceRepository
	Invoice  InvoiceRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Room:     NewRoomRepository(db, log),
		Customer: NewCustomerRepository(db, log),
		Service:  NewServiceRepository(db, log),
		Invoice:  NewInvoiceRepository(db, log),
	}
}
