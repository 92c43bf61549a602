package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/notifier"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Mock repositories

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *entity.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByNumber(ctx context.Context, number string) (*entity.Room, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Room), args.Error(1)
}

func (m *MockRoomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Room), args.Error(1)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *entity.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoomRepository) Reserve(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomRepository) Release(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindExact(ctx context.Context, name, phone, email string) (*entity.Customer, error) {
	args := m.Called(ctx, name, phone, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, service *entity.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Service), args.Error(1)
}

func (m *MockServiceRepository) FindAll(ctx context.Context) ([]*entity.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Service, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Service), args.Error(1)
}

func (m *MockServiceRepository) Update(ctx context.Context, service *entity.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByCreatedBy(ctx context.Context, userID uuid.UUID) ([]*entity.Invoice, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Invoice, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) FindActive(ctx context.Context) ([]*entity.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindActiveByRoomID(ctx context.Context, roomID uuid.UUID) (*entity.Invoice, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateVersioned(ctx context.Context, invoice *entity.Invoice) (bool, error) {
	args := m.Called(ctx, invoice)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PublishBookingCreated(event notifier.BookingCreatedEvent) {
	m.Called(event)
}

func (m *MockNotifier) PublishStatusChanged(event notifier.StatusChangedEvent) {
	m.Called(event)
}

// Test fixtures

type invoiceMocks struct {
	rooms     *MockRoomRepository
	customers *MockCustomerRepository
	services  *MockServiceRepository
	invoices  *MockInvoiceRepository
	users     *MockUserRepository
	events    *MockNotifier
}

func newInvoiceService(t *testing.T) (InvoiceService, *invoiceMocks) {
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

	return NewInvoiceService(repo, m.events, zap.NewNop()), m
}

func staffCaller() Caller {
	return Caller{ID: uuid.New(), Name: "Front Desk", Role: entity.RoleStaff}
}

func customerCaller() Caller {
	return Caller{ID: uuid.New(), Name: "Guest", Role: entity.RoleCustomer}
}

func testRoom(price int64) *entity.Room {
	return &entity.Room{
		Base:        entity.Base{ID: uuid.New()},
		Number:      "101",
		RoomType:    entity.RoomTypeNormal,
		BedType:     entity.BedTypeSingle,
		Price:       price,
		IsAvailable: true,
	}
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// Tests

func TestCreateBooking_RoomUnavailable(t *testing.T) {
	svc, m := newInvoiceService(t)
	room := testRoom(500_000)

	m.rooms.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	m.rooms.On("Reserve", mock.Anything, room.ID).Return(false, nil)

	req := &request.CreateBookingRequest{
		Name:    "Jane Doe",
		Phone:   "0812000111",
		Email:   "jane@example.com",
		RoomID:  room.ID.String(),
		CheckIn: futureDate(1),
	}

	resp, err := svc.CreateBooking(context.Background(), customerCaller(), req)

	assert.ErrorIs(t, err, ErrRoomUnavailable)
	assert.Nil(t, resp)
	m.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.rooms.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestCreateBooking_CustomerStartsAwaitingConfirmation(t *testing.T) {
	svc, m := newInvoiceService(t)
	room := testRoom(500_000)

	m.rooms.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	m.rooms.On("Reserve", mock.Anything, room.ID).Return(true, nil)
	m.customers.On("FindExact", mock.Anything, "Jane Doe", "0812000111", "jane@example.com").Return(nil, nil)
	m.customers.On("Create", mock.Anything, mock.AnythingOfType("*entity.Customer")).Return(nil)
	m.customers.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil)
	m.invoices.On("Create", mock.Anything, mock.AnythingOfType("*entity.Invoice")).Return(nil)
	m.events.On("PublishBookingCreated", mock.AnythingOfType("notifier.BookingCreatedEvent")).Return()

	req := &request.CreateBookingRequest{
		Name:    "Jane Doe",
		Phone:   "0812000111",
		Email:   "jane@example.com",
		RoomID:  room.ID.String(),
		CheckIn: futureDate(1),
	}

	resp, err := svc.CreateBooking(context.Background(), customerCaller(), req)

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, entity.StatusAwaitingConfirmation, resp.Status)
	}
	m.events.AssertCalled(t, "PublishBookingCreated", mock.AnythingOfType("notifier.BookingCreatedEvent"))
}

func TestCreateBooking_StaffStartsAwaitingPayment(t *testing.T) {
	svc, m := newInvoiceService(t)
	room := testRoom(500_000)
	existing := &entity.Customer{
		Base:  entity.Base{ID: uuid.New()},
		Name:  "Jane Doe",
		Phone: "0812000111",
		Email: "jane@example.com",
	}

	m.rooms.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	m.rooms.On("Reserve", mock.Anything, room.ID).Return(true, nil)
	m.customers.On("FindExact", mock.Anything, "Jane Doe", "0812000111", "jane@example.com").Return(existing, nil)
	m.customers.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	m.invoices.On("Create", mock.Anything, mock.AnythingOfType("*entity.Invoice")).Return(nil)
	m.events.On("PublishBookingCreated", mock.AnythingOfType("notifier.BookingCreatedEvent")).Return()

	req := &request.CreateBookingRequest{
		Name:    "Jane Doe",
		Phone:   "0812000111",
		Email:   "jane@example.com",
		RoomID:  room.ID.String(),
		CheckIn: futureDate(1),
	}

	resp, err := svc.CreateBooking(context.Background(), staffCaller(), req)

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, entity.StatusAwaitingPayment, resp.Status)
	}
	// Exact match found, no new customer record
	m.customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_ReleasesRoomWhenInsertFails(t *testing.T) {
	svc, m := newInvoiceService(t)
	room := testRoom(500_000)

	m.rooms.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	m.rooms.On("Reserve", mock.Anything, room.ID).Return(true, nil)
	m.customers.On("FindExact", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	m.customers.On("Create", mock.Anything, mock.AnythingOfType("*entity.Customer")).Return(nil)
	m.invoices.On("Create", mock.Anything, mock.AnythingOfType("*entity.Invoice")).Return(assert.AnError)
	m.rooms.On("Release", mock.Anything, room.ID).Return(nil)

	req := &request.CreateBookingRequest{
		Name:    "Jane Doe",
		Phone:   "0812000111",
		Email:   "jane@example.com",
		RoomID:  room.ID.String(),
		CheckIn: futureDate(1),
	}

	resp, err := svc.CreateBooking(context.Background(), customerCaller(), req)

	assert.Error(t, err)
	assert.Nil(t, resp)
	m.rooms.AssertCalled(t, "Release", mock.Anything, room.ID)
}

func TestCreateBooking_RejectsInvertedDates(t *testing.T) {
	svc, m := newInvoiceService(t)
	room := testRoom(500_000)

	m.rooms.On("FindByID", mock.Anything, room.ID).Return(room, nil)

	checkOut := futureDate(1)
	req := &request.CreateBookingRequest{
		Name:     "Jane Doe",
		Phone:    "0812000111",
		Email:    "jane@example.com",
		RoomID:   room.ID.String(),
		CheckIn:  futureDate(3),
		CheckOut: &checkOut,
	}

	_, err := svc.CreateBooking(context.Background(), customerCaller(), req)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	m.rooms.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
}

func TestTransitionStatus_CancelReleasesRoom(t *testing.T) {
	svc, m := newInvoiceService(t)
	room := testRoom(500_000)
	caller := staffCaller()
	invoice := &entity.Invoice{
		Base:       entity.Base{ID: uuid.New()},
		OrderID:    "INV-1",
		CustomerID: uuid.New(),
		RoomID:     room.ID,
		CheckIn:    time.Now().AddDate(0, 0, 1),
		Status:     entity.StatusAwaitingPayment,
	}

	m.invoices.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)
	m.invoices.On("UpdateVersioned", mock.Anything, mock.AnythingOfType("*entity.Invoice")).Return(true, nil)
	m.rooms.On("Release", mock.Anything, room.ID).Return(nil)
	m.rooms.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	m.customers.On("FindByID", mock.Anything, invoice.CustomerID).Return(nil, nil)
	m.events.On("PublishStatusChanged", mock.AnythingOfType("notifier.StatusChangedEvent")).Return()

	resp, err := svc.TransitionStatus(context.Background(), caller, invoice.ID.String(), entity.StatusCancelled)

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, entity.StatusCancelled, resp.Status)
	}
	m.rooms.AssertCalled(t, "Release", mock.Anything, room.ID)
}

func TestTransitionStatus_TerminalInvoiceLocked(t *testing.T) {
	svc, m := newInvoiceService(t)
	invoice := &entity.Invoice{
		Base:   entity.Base{ID: uuid.New()},
		RoomID: uuid.New(),
		Status: entity.StatusPaid,
	}

	m.invoices.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)

	_, err := svc.TransitionStatus(context.Background(), staffCaller(), invoice.ID.String(), entity.StatusCancelled)

	assert.ErrorIs(t, err, ErrInvoiceTerminal)
	m.invoices.AssertNotCalled(t, "UpdateVersioned", mock.Anything, mock.Anything)
}

func TestTransitionStatus_IllegalJump(t *testing.T) {
	svc, m := newInvoiceService(t)
	invoice := &entity.Invoice{
		Base:   entity.Base{ID: uuid.New()},
		RoomID: uuid.New(),
		Status: entity.StatusAwaitingConfirmation,
	}

	m.invoices.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)

	// Skipping straight from confirmation to paid goes through the
	// payment path, which requires awaiting_payment.
	_, err := svc.RecordPayment(context.Background(), staffCaller(), invoice.ID.String())

	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestRecordPayment_StayNotStarted(t *testing.T) {
	svc, m := newInvoiceService(t)
	invoice := &entity.Invoice{
		Base:    entity.Base{ID: uuid.New()},
		RoomID:  uuid.New(),
		CheckIn: time.Now().AddDate(0, 0, 1), // tomorrow
		Status:  entity.StatusAwaitingPayment,
	}

	m.invoices.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)

	_, err := svc.RecordPayment(context.Background(), staffCaller(), invoice.ID.String())

	assert.ErrorIs(t, err, ErrStayNotStarted)
	m.invoices.AssertNotCalled(t, "UpdateVersioned", mock.Anything, mock.Anything)
	m.rooms.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestRecordPayment_OpenStaySettlesAgainstNow(t *testing.T) {
	svc, m := newInvoiceService(t)
	room := testRoom(500_000)
	caller := staffCaller()
	invoice := &entity.Invoice{
		Base:       entity.Base{ID: uuid.New()},
		OrderID:    "INV-2",
		CustomerID: uuid.New(),
		RoomID:     room.ID,
		CheckIn:    time.Now().Add(-2 * time.Hour), // started today
		Status:     entity.StatusAwaitingPayment,
	}

	var saved *entity.Invoice
	m.invoices.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)
	m.invoices.On("UpdateVersioned", mock.Anything, mock.AnythingOfType("*entity.Invoice")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entity.Invoice)
		}).
		Return(true, nil)
	m.rooms.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	m.rooms.On("Release", mock.Anything, room.ID).Return(nil)
	m.customers.On("FindByID", mock.Anything, invoice.CustomerID).Return(nil, nil)
	m.users.On("FindByID", mock.Anything, caller.ID).Return(nil, nil)
	m.events.On("PublishStatusChanged", mock.AnythingOfType("notifier.StatusChangedEvent")).Return()

	resp, err := svc.RecordPayment(context.Background(), caller, invoice.ID.String())

	assert.NoError(t, err)
	if assert.NotNil(t, saved) {
		// Same-day settlement floors to a single night.
		assert.Equal(t, int64(500_000), saved.RoomCharge)
		assert.Equal(t, saved.RoomCharge+saved.ServiceCharge, saved.TotalAmount)
		assert.Equal(t, entity.StatusPaid, saved.Status)
		assert.NotNil(t, saved.CheckOut)
		assert.NotNil(t, saved.PaidAt)
		if assert.NotNil(t, saved.PaidBy) {
			assert.Equal(t, caller.ID, *saved.PaidBy)
		}
	}
	if assert.NotNil(t, resp) {
		assert.Equal(t, entity.StatusPaid, resp.Status)
	}
	m.rooms.AssertCalled(t, "Release", mock.Anything, room.ID)
}

func TestAddService_UnavailableServiceRejected(t *testing.T) {
	svc, m := newInvoiceService(t)
	caller := staffCaller()
	service := &entity.Service{
		Base:        entity.Base{ID: uuid.New()},
		Name:        "Spa",
		Price:       200_000,
		IsAvailable: false,
	}
	invoice := &entity.Invoice{
		Base:    entity.Base{ID: uuid.New()},
		RoomID:  uuid.New(),
		CheckIn: time.Now().AddDate(0, 0, -1),
		Status:  entity.StatusAwaitingPayment,
	}

	m.invoices.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)
	m.services.On("FindByID", mock.Anything, service.ID).Return(service, nil)

	req := &request.AddServiceRequest{
		ServiceID: service.ID.String(),
		Quantity:  1,
		StartDate: time.Now().Format("2006-01-02"),
	}

	_, err := svc.AddService(context.Background(), caller, invoice.ID.String(), req)

	assert.ErrorIs(t, err, ErrServiceUnavailable)
	m.invoices.AssertNotCalled(t, "UpdateVersioned", mock.Anything, mock.Anything)
}

func TestAddService_MergesIdenticalLine(t *testing.T) {
	svc, m := newInvoiceService(t)
	caller := staffCaller()
	room := testRoom(500_000)
	service := &entity.Service{
		Base:        entity.Base{ID: uuid.New()},
		Name:        "Breakfast",
		Price:       100_000,
		IsAvailable: true,
	}

	checkIn := time.Now().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	start, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	invoice := &entity.Invoice{
		Base:       entity.Base{ID: uuid.New()},
		OrderID:    "INV-3",
		CustomerID: uuid.New(),
		RoomID:     room.ID,
		CheckIn:    checkIn,
		Status:     entity.StatusAwaitingPayment,
		Services: []entity.ServiceLine{
			{ServiceID: service.ID, Quantity: 1, StartDate: start},
		},
	}

	var saved *entity.Invoice
	m.invoices.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)
	m.services.On("FindByID", mock.Anything, service.ID).Return(service, nil)
	m.services.On("FindByIDs", mock.Anything, mock.Anything).Return([]*entity.Service{service}, nil)
	m.rooms.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	m.invoices.On("UpdateVersioned", mock.Anything, mock.AnythingOfType("*entity.Invoice")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entity.Invoice)
		}).
		Return(true, nil)
	m.customers.On("FindByID", mock.Anything, invoice.CustomerID).Return(nil, nil)

	req := &request.AddServiceRequest{
		ServiceID: service.ID.String(),
		Quantity:  2,
		StartDate: start.Format("2006-01-02"),
	}

	_, err := svc.AddService(context.Background(), caller, invoice.ID.String(), req)

	assert.NoError(t, err)
	if assert.NotNil(t, saved) {
		assert.Len(t, saved.Services, 1)
		assert.Equal(t, 3, saved.Services[0].Quantity)
		assert.Equal(t, saved.RoomCharge+saved.ServiceCharge, saved.TotalAmount)
	}
}

func TestAddService_TerminalInvoiceLocked(t *testing.T) {
	svc, m := newInvoiceService(t)
	invoice := &entity.Invoice{
		Base:   entity.Base{ID: uuid.New()},
		RoomID: uuid.New(),
		Status: entity.StatusCancelled,
	}

	m.invoices.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)

	req := &request.AddServiceRequest{
		ServiceID: uuid.New().String(),
		Quantity:  1,
		StartDate: time.Now().Format("2006-01-02"),
	}

	_, err := svc.AddService(context.Background(), staffCaller(), invoice.ID.String(), req)

	assert.ErrorIs(t, err, ErrInvoiceTerminal)
}

func TestEditInvoice_GuestCannotTouchOthersBooking(t *testing.T) {
	svc, m := newInvoiceService(t)
	invoice := &entity.Invoice{
		Base:      entity.Base{ID: uuid.New()},
		RoomID:    uuid.New(),
		CreatedBy: uuid.New(), // someone else
		Status:    entity.StatusAwaitingConfirmation,
	}

	m.invoices.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)

	note := "late arrival"
	_, err := svc.EditInvoice(context.Background(), customerCaller(), invoice.ID.String(), &request.UpdateInvoiceRequest{Note: &note})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestEditInvoice_VersionConflictSurfaces(t *testing.T) {
	svc, m := newInvoiceService(t)
	room := testRoom(500_000)
	caller := staffCaller()
	invoice := &entity.Invoice{
		Base:       entity.Base{ID: uuid.New()},
		CustomerID: uuid.New(),
		RoomID:     room.ID,
		CheckIn:    time.Now().AddDate(0, 0, -1),
		Status:     entity.StatusAwaitingPayment,
	}

	m.invoices.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)
	m.rooms.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	m.invoices.On("UpdateVersioned", mock.Anything, mock.AnythingOfType("*entity.Invoice")).Return(false, nil)

	note := "rebooked"
	_, err := svc.EditInvoice(context.Background(), caller, invoice.ID.String(), &request.UpdateInvoiceRequest{Note: &note})

	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestGetInvoiceByID_NotFound(t *testing.T) {
	svc, m := newInvoiceService(t)
	id := uuid.New()

	m.invoices.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, err := svc.GetInvoiceByID(context.Background(), staffCaller(), id.String())

	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}
