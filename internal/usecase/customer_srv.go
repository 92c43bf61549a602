package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CustomerService interface {
	GetCustomers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CustomerResponse], error)
	GetCustomerByID(ctx context.Context, customerID string) (*response.CustomerResponse, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	log          *zap.Logger
}

func NewCustomerService(customerRepo repository.CustomerRepository, log *zap.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		log:          log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) GetCustomers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CustomerResponse], error) {
	customers, err := s.customerRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get customers", zap.Error(err))
		return nil, fmt.Errorf("get customers: %w", err)
	}

	total, err := s.customerRepo.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count customers", zap.Error(err))
		return nil, fmt.Errorf("count customers: %w", err)
	}

	result := make([]response.CustomerResponse, len(customers))
	for i, customer := range customers {
		result[i] = response.CustomerToResponse(customer)
	}

	return response.NewPaginatedResponse(result, req.Page, req.PerPage, total), nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*response.CustomerResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}
