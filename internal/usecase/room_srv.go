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

type RoomService interface {
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	GetRooms(ctx context.Context, includeHidden bool) ([]response.RoomResponse, error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Room.FindByNumber(ctx, req.Number)
	if err != nil {
		return nil, fmt.Errorf("check room number: %w", err)
	}
	if existing != nil {
		return nil, ErrRoomNumberTaken
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Number:      req.Number,
		RoomType:    entity.RoomType(req.RoomType),
		BedType:     entity.BedType(req.BedType),
		Price:       req.Price,
		Img:         req.Img,
		IsAvailable: true,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err), zap.String("number", req.Number))
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("number", room.Number),
		zap.Int64("price", room.Price),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

// GetRooms lists rooms, each occupied one annotated with the invoice
// holding it. Hidden rooms only show up on the staff listing.
func (s *roomService) GetRooms(ctx context.Context, includeHidden bool) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get rooms", zap.Error(err))
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	active, err := s.repo.Invoice.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to get active invoices", zap.Error(err))
		return nil, fmt.Errorf("get active invoices: %w", err)
	}

	activeByRoom := make(map[uuid.UUID]*entity.Invoice, len(active))
	for _, invoice := range active {
		activeByRoom[invoice.RoomID] = invoice
	}

	result := make([]response.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		if room.IsHidden && !includeHidden {
			continue
		}

		resp := response.RoomToResponse(room)
		if invoice, ok := activeByRoom[room.ID]; ok {
			resp.ActiveInvoice = &response.ActiveInvoiceRef{
				InvoiceID: invoice.ID.String(),
				Status:    invoice.Status,
			}
		}
		result = append(result, resp)
	}

	return result, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	room, err := s.loadRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	resp := response.RoomToResponse(room)

	invoice, err := s.repo.Invoice.FindActiveByRoomID(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("get active invoice: %w", err)
	}
	if invoice != nil {
		resp.ActiveInvoice = &response.ActiveInvoiceRef{
			InvoiceID: invoice.ID.String(),
			Status:    invoice.Status,
		}
	}

	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	room, err := s.loadRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if req.Number != nil && *req.Number != room.Number {
		existing, err := s.repo.Room.FindByNumber(ctx, *req.Number)
		if err != nil {
			return nil, fmt.Errorf("check room number: %w", err)
		}
		if existing != nil {
			return nil, ErrRoomNumberTaken
		}
		room.Number = *req.Number
	}
	if req.RoomType != nil {
		room.RoomType = entity.RoomType(*req.RoomType)
	}
	if req.BedType != nil {
		room.BedType = entity.BedType(*req.BedType)
	}
	if req.Price != nil {
		room.Price = *req.Price
	}
	if req.Img != nil {
		room.Img = *req.Img
	}
	if req.IsHidden != nil {
		room.IsHidden = *req.IsHidden
	}
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.log.Info("Room updated", zap.String("room_id", room.ID.String()), zap.String("number", room.Number))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	room, err := s.loadRoom(ctx, roomID)
	if err != nil {
		return err
	}

	// A room with an open invoice is still on someone's bill.
	invoice, err := s.repo.Invoice.FindActiveByRoomID(ctx, room.ID)
	if err != nil {
		return fmt.Errorf("check active invoice: %w", err)
	}
	if invoice != nil {
		return ErrRoomOccupied
	}

	if err := s.repo.Room.Delete(ctx, room.ID); err != nil {
		s.log.Error("Failed to delete room", zap.Error(err), zap.String("room_id", roomID))
		return fmt.Errorf("delete room: %w", err)
	}

	s.log.Info("Room deleted", zap.String("room_id", room.ID.String()), zap.String("number", room.Number))
	return nil
}

func (s *roomService) loadRoom(ctx context.Context, roomID string) (*entity.Room, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	return room, nil
}
