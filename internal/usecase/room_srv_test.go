package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newRoomService(t *testing.T) (RoomService, *invoiceMocks) {
	t.Helper()

	m := &invoiceMocks{
		rooms:     new(MockRoomRepository),
		customers: new(MockCustomerRepository),
		services:  new(MockServiceRepository),
		invoices:  new(MockInvoiceRepository),
		users:     new(MockUserRepository),
		events:    new(MockNotifier),
	}

	repo := &repository.Repository{
		User:     m.users,
		Room:     m.rooms,
		Customer: m.customers,
		Service:  m.services,
		Invoice:  m.invoices,
	}

	return NewRoomService(repo, zap.NewNop()), m
}

func TestCreateRoom_DuplicateNumberRejected(t *testing.T) {
	svc, m := newRoomService(t)
	existing := testRoom(500_000)

	m.rooms.On("FindByNumber", mock.Anything, "101").Return(existing, nil)

	req := &request.CreateRoomRequest{
		Number:   "101",
		RoomType: "ROOM_NORMAL",
		BedType:  "SINGLE",
		Price:    500_000,
	}

	_, err := svc.CreateRoom(context.Background(), req)

	assert.ErrorIs(t, err, ErrRoomNumberTaken)
	m.rooms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRoom_NewRoomStartsAvailable(t *testing.T) {
	svc, m := newRoomService(t)

	var created *entity.Room
	m.rooms.On("FindByNumber", mock.Anything, "202").Return(nil, nil)
	m.rooms.On("Create", mock.Anything, mock.AnythingOfType("*entity.Room")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Room)
		}).
		Return(nil)

	req := &request.CreateRoomRequest{
		Number:   "202",
		RoomType: "ROOM_VIP",
		BedType:  "DOUBLE",
		Price:    900_000,
	}

	resp, err := svc.CreateRoom(context.Background(), req)

	assert.NoError(t, err)
	if assert.NotNil(t, created) {
		assert.True(t, created.IsAvailable)
		assert.False(t, created.IsHidden)
	}
	if assert.NotNil(t, resp) {
		assert.Equal(t, "202", resp.Number)
	}
}

func TestGetRooms_AnnotatesOccupiedRooms(t *testing.T) {
	svc, m := newRoomService(t)
	free := testRoom(500_000)
	taken := testRoom(700_000)
	taken.Number = "102"
	hidden := testRoom(300_000)
	hidden.Number = "901"
	hidden.IsHidden = true

	invoice := &entity.Invoice{
		Base:   entity.Base{ID: uuid.New()},
		RoomID: taken.ID,
		Status: entity.StatusAwaitingPayment,
	}

	m.rooms.On("FindAll", mock.Anything).Return([]*entity.Room{free, taken, hidden}, nil)
	m.invoices.On("FindActive", mock.Anything).Return([]*entity.Invoice{invoice}, nil)

	rooms, err := svc.GetRooms(context.Background(), false)

	assert.NoError(t, err)
	// Hidden room excluded from the public listing
	assert.Len(t, rooms, 2)
	for _, room := range rooms {
		if room.ID == taken.ID.String() {
			if assert.NotNil(t, room.ActiveInvoice) {
				assert.Equal(t, invoice.ID.String(), room.ActiveInvoice.InvoiceID)
				assert.Equal(t, entity.StatusAwaitingPayment, room.ActiveInvoice.Status)
			}
		} else {
			assert.Nil(t, room.ActiveInvoice)
		}
	}
}

func TestGetRooms_StaffSeeHiddenRooms(t *testing.T) {
	svc, m := newRoomService(t)
	hidden := testRoom(300_000)
	hidden.IsHidden = true

	m.rooms.On("FindAll", mock.Anything).Return([]*entity.Room{hidden}, nil)
	m.invoices.On("FindActive", mock.Anything).Return([]*entity.Invoice{}, nil)

	rooms, err := svc.GetRooms(context.Background(), true)

	assert.NoError(t, err)
	assert.Len(t, rooms, 1)
}

func TestDeleteRoom_BlockedWhileOccupied(t *testing.T) {
	svc, m := newRoomService(t)
	room := testRoom(500_000)
	invoice := &entity.Invoice{
		Base:   entity.Base{ID: uuid.New()},
		RoomID: room.ID,
		Status: entity.StatusAwaitingConfirmation,
	}

	m.rooms.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	m.invoices.On("FindActiveByRoomID", mock.Anything, room.ID).Return(invoice, nil)

	err := svc.DeleteRoom(context.Background(), room.ID.String())

	assert.ErrorIs(t, err, ErrRoomOccupied)
	m.rooms.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteRoom_FreeRoomRemoved(t *testing.T) {
	svc, m := newRoomService(t)
	room := testRoom(500_000)

	m.rooms.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	m.invoices.On("FindActiveByRoomID", mock.Anything, room.ID).Return(nil, nil)
	m.rooms.On("Delete", mock.Anything, room.ID).Return(nil)

	err := svc.DeleteRoom(context.Background(), room.ID.String())

	assert.NoError(t, err)
	m.rooms.AssertCalled(t, "Delete", mock.Anything, room.ID)
}

func TestUpdateRoom_NotFound(t *testing.T) {
	svc, m := newRoomService(t)
	id := uuid.New()

	m.rooms.On("FindByID", mock.Anything, id).Return(nil, nil)

	price := int64(600_000)
	_, err := svc.UpdateRoom(context.Background(), id.String(), &request.UpdateRoomRequest{Price: &price})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}
