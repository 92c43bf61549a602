package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService manages the service catalog offered to guests.
type CatalogService interface {
	CreateService(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error)
	GetServices(ctx context.Context, availableOnly bool) ([]response.ServiceResponse, error)
	GetServiceByID(ctx context.Context, serviceID string) (*response.ServiceResponse, error)
	UpdateService(ctx context.Context, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error)
	DeleteService(ctx context.Context, serviceID string) error
}

type catalogService struct {
	serviceRepo repository.ServiceRepository
	log         *zap.Logger
}

func NewCatalogService(serviceRepo repository.ServiceRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		serviceRepo: serviceRepo,
		log:         log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) CreateService(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	service := &entity.Service{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Price:       req.Price,
		DescShort:   req.DescShort,
		DescLong:    req.DescLong,
		Images:      req.Images,
		IsAvailable: true,
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		s.log.Error("Failed to create service", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info("Service created",
		zap.String("service_id", service.ID.String()),
		zap.String("name", service.Name),
		zap.Int64("price", service.Price),
	)

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) GetServices(ctx context.Context, availableOnly bool) ([]response.ServiceResponse, error) {
	services, err := s.serviceRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get services", zap.Error(err))
		return nil, fmt.Errorf("get services: %w", err)
	}

	result := make([]response.ServiceResponse, 0, len(services))
	for _, service := range services {
		if availableOnly && !service.IsAvailable {
			continue
		}
		result = append(result, response.ServiceToResponse(service))
	}

	return result, nil
}

func (s *catalogService) GetServiceByID(ctx context.Context, serviceID string) (*response.ServiceResponse, error) {
	service, err := s.loadService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) UpdateService(ctx context.Context, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	service, err := s.loadService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DescShort != nil {
		service.DescShort = *req.DescShort
	}
	if req.DescLong != nil {
		service.DescLong = *req.DescLong
	}
	if req.Images != nil {
		service.Images = *req.Images
	}
	if req.IsAvailable != nil {
		service.IsAvailable = *req.IsAvailable
	}
	service.UpdatedAt = time.Now()

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		s.log.Error("Failed to update service", zap.Error(err), zap.String("service_id", serviceID))
		return nil, fmt.Errorf("update service: %w", err)
	}

	s.log.Info("Service updated",
		zap.String("service_id", service.ID.String()),
		zap.String("name", service.Name),
		zap.Bool("is_available", service.IsAvailable),
	)

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) DeleteService(ctx context.Context, serviceID string) error {
	service, err := s.loadService(ctx, serviceID)
	if err != nil {
		return err
	}

	if err := s.serviceRepo.Delete(ctx, service.ID); err != nil {
		s.log.Error("Failed to delete service", zap.Error(err), zap.String("service_id", serviceID))
		return fmt.Errorf("delete service: %w", err)
	}

	s.log.Info("Service deleted", zap.String("service_id", service.ID.String()), zap.String("name", service.Name))
	return nil
}

func (s *catalogService) loadService(ctx context.Context, serviceID string) (*entity.Service, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s: %w", serviceID, err)
	}

	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find service: %w", err)
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	return service, nil
}
