package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/notifier"
	"hotel-booking/internal/pricing"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Notifier receives lifecycle events after a successful commit. Delivery
// is fire-and-forget; implementations must never block the caller.
type Notifier interface {
	PublishBookingCreated(event notifier.BookingCreatedEvent)
	PublishStatusChanged(event notifier.StatusChangedEvent)
}

// InvoiceService is the only mutation entry point for the booking
// aggregate: every date, service, status, and payment change funnels
// through here, recomputing charges on the way.
type InvoiceService interface {
	CreateBooking(ctx context.Context, caller Caller, req *request.CreateBookingRequest) (*response.InvoiceResponse, error)
	GetMyInvoices(ctx context.Context, caller Caller) ([]response.InvoiceResponse, error)
	GetAllInvoices(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.InvoiceResponse], error)
	GetInvoiceByID(ctx context.Context, caller Caller, invoiceID string) (*response.InvoiceResponse, error)

	AddService(ctx context.Context, caller Caller, invoiceID string, req *request.AddServiceRequest) (*response.InvoiceResponse, error)
	EditInvoice(ctx context.Context, caller Caller, invoiceID string, req *request.UpdateInvoiceRequest) (*response.InvoiceResponse, error)
	TransitionStatus(ctx context.Context, caller Caller, invoiceID string, target entity.InvoiceStatus) (*response.InvoiceResponse, error)
	RecordPayment(ctx context.Context, caller Caller, invoiceID string) (*response.InvoiceResponse, error)
}

type invoiceService struct {
	repo   *repository.Repository
	events Notifier
	log    *zap.Logger
}

func NewInvoiceService(repo *repository.Repository, events Notifier, log *zap.Logger) InvoiceService {
	return &invoiceService{
		repo:   repo,
		events: events,
		log:    log.With(zap.String("service", "invoice")),
	}
}

func (s *invoiceService) CreateBooking(ctx context.Context, caller Caller, req *request.CreateBookingRequest) (*response.InvoiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("check room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	checkOut, err := parseDatePtr(req.CheckOut)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if checkOut != nil && !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	// Validate and price the requested service lines before touching
	// any state.
	lines, err := s.resolveLines(ctx, req.Services, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	items, err := s.priceItems(ctx, lines)
	if err != nil {
		return nil, err
	}

	// Reserve is a single conditional update; two concurrent bookings on
	// the same room can never both pass this point.
	reserved, err := s.repo.Room.Reserve(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("reserve room: %w", err)
	}
	if !reserved {
		return nil, ErrRoomUnavailable
	}

	customer, err := s.resolveCustomer(ctx, caller, req.Name, req.Phone, req.Email)
	if err != nil {
		// Undo the reservation; the booking never existed.
		s.compensateReserve(ctx, roomID)
		return nil, err
	}

	now := time.Now()
	quote := pricing.ComputeCharges(room.Price, checkIn, checkOut, items, now)

	// Customers queue for staff confirmation; staff booking a walk-in
	// goes straight to awaiting payment.
	status := entity.StatusAwaitingConfirmation
	if caller.Role.Staff() {
		status = entity.StatusAwaitingPayment
	}

	note := ""
	if req.Note != nil {
		note = strings.TrimSpace(*req.Note)
	}

	invoice := &entity.Invoice{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:       utils.GenerateOrderID(),
		CustomerID:    customer.ID,
		RoomID:        roomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Services:      lines,
		Note:          note,
		BookedBy:      caller.Name,
		CreatedBy:     caller.ID,
		RoomCharge:    quote.RoomCharge,
		ServiceCharge: quote.ServiceCharge,
		TotalAmount:   quote.TotalAmount,
		Status:        status,
	}

	if err := s.repo.Invoice.Create(ctx, invoice); err != nil {
		s.log.Error("Failed to create invoice",
			zap.Error(err),
			zap.String("room_id", req.RoomID),
			zap.String("user_id", caller.ID.String()),
		)
		s.compensateReserve(ctx, roomID)
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("order_id", invoice.OrderID),
		zap.String("room", room.Number),
		zap.String("customer", customer.Name),
		zap.String("status", string(status)),
		zap.Int64("total_amount", invoice.TotalAmount),
	)

	// Fire-and-forget; the hub drops events rather than block us.
	s.events.PublishBookingCreated(notifier.BookingCreatedEvent{
		Customer: customer.Name,
		Room:     room.Number,
		Time:     now,
	})

	return s.buildInvoiceResponse(ctx, invoice), nil
}

// compensateReserve undoes a reservation after a failed booking insert.
// Release is idempotent so an already-free room is harmless.
func (s *invoiceService) compensateReserve(ctx context.Context, roomID uuid.UUID) {
	if err := s.repo.Room.Release(ctx, roomID); err != nil {
		s.log.Error("Failed to release room after aborted booking",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
	}
}

// resolveCustomer reuses a customer record only on an exact
// name+phone+email match, otherwise creates a fresh one.
func (s *invoiceService) resolveCustomer(ctx context.Context, caller Caller, name, phone, email string) (*entity.Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)

	customer, err := s.repo.Customer.FindExact(ctx, name, phone, email)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer != nil {
		return customer, nil
	}

	now := time.Now()
	userID := caller.ID
	customer = &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:   name,
		Phone:  phone,
		Email:  email,
		UserID: &userID,
	}

	if err := s.repo.Customer.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	return customer, nil
}

func (s *invoiceService) GetMyInvoices(ctx context.Context, caller Caller) ([]response.InvoiceResponse, error) {
	invoices, err := s.repo.Invoice.FindByCreatedBy(ctx, caller.ID)
	if err != nil {
		s.log.Error("Failed to get user invoices",
			zap.Error(err),
			zap.String("user_id", caller.ID.String()),
		)
		return nil, fmt.Errorf("get user invoices: %w", err)
	}

	result := make([]response.InvoiceResponse, len(invoices))
	for i, invoice := range invoices {
		result[i] = *s.buildInvoiceResponse(ctx, invoice)
	}

	return result, nil
}

func (s *invoiceService) GetAllInvoices(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.InvoiceResponse], error) {
	invoices, err := s.repo.Invoice.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get all invoices", zap.Error(err))
		return nil, fmt.Errorf("get all invoices: %w", err)
	}

	total, err := s.repo.Invoice.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count invoices", zap.Error(err))
		return nil, fmt.Errorf("count invoices: %w", err)
	}

	result := make([]response.InvoiceResponse, len(invoices))
	for i, invoice := range invoices {
		result[i] = *s.buildInvoiceResponse(ctx, invoice)
	}

	return response.NewPaginatedResponse(result, req.Page, req.PerPage, total), nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, caller Caller, invoiceID string) (*response.InvoiceResponse, error) {
	invoice, err := s.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if !caller.Role.Staff() && invoice.CreatedBy != caller.ID {
		return nil, ErrForbidden
	}

	return s.buildInvoiceResponse(ctx, invoice), nil
}

func (s *invoiceService) AddService(ctx context.Context, caller Caller, invoiceID string, req *request.AddServiceRequest) (*response.InvoiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	invoice, err := s.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status.Terminal() {
		return nil, ErrInvoiceTerminal
	}
	if !caller.Role.Staff() && invoice.CreatedBy != caller.ID {
		return nil, ErrForbidden
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s: %w", req.ServiceID, err)
	}

	service, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("check service: %w", err)
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}
	if !service.IsAvailable {
		return nil, ErrServiceUnavailable
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if err := validateLineDates(startDate, endDate, invoice.CheckIn, invoice.CheckOut); err != nil {
		return nil, err
	}

	// Work on a copy so a failed write leaves the aggregate untouched.
	updated := *invoice
	updated.Services = append([]entity.ServiceLine(nil), invoice.Services...)

	// Same service over the identical date range merges by quantity
	// instead of duplicating the line.
	merged := false
	for i, line := range updated.Services {
		if line.ServiceID == serviceID && sameDay(line.StartDate, startDate) && sameDayPtr(line.EndDate, endDate) {
			updated.Services[i].Quantity += req.Quantity
			merged = true
			break
		}
	}
	if !merged {
		updated.Services = append(updated.Services, entity.ServiceLine{
			ServiceID: serviceID,
			Quantity:  req.Quantity,
			StartDate: startDate,
			EndDate:   endDate,
		})
	}

	if err := s.recomputeAndSave(ctx, &updated); err != nil {
		return nil, err
	}

	s.log.Info("Service added to invoice",
		zap.String("invoice_id", updated.ID.String()),
		zap.String("service", service.Name),
		zap.Int("quantity", req.Quantity),
		zap.Bool("merged", merged),
		zap.Int64("total_amount", updated.TotalAmount),
	)

	return s.buildInvoiceResponse(ctx, &updated), nil
}

func (s *invoiceService) EditInvoice(ctx context.Context, caller Caller, invoiceID string, req *request.UpdateInvoiceRequest) (*response.InvoiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Edit invoice validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	invoice, err := s.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status.Terminal() {
		return nil, ErrInvoiceTerminal
	}
	// Guests may rework only their own booking, and only while it still
	// awaits confirmation. Staff can edit any open invoice.
	if !caller.Role.Staff() {
		if invoice.CreatedBy != caller.ID {
			return nil, ErrForbidden
		}
		if invoice.Status != entity.StatusAwaitingConfirmation {
			return nil, ErrForbidden
		}
	}

	updated := *invoice
	updated.Services = append([]entity.ServiceLine(nil), invoice.Services...)

	if req.CheckIn != nil {
		checkIn, err := parseDate(*req.CheckIn)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		updated.CheckIn = checkIn
	}
	if req.CheckOut != nil {
		checkOut, err := parseDate(*req.CheckOut)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		updated.CheckOut = &checkOut
	}
	if updated.CheckOut != nil && !updated.CheckOut.After(updated.CheckIn) {
		return nil, ErrInvalidDateRange
	}

	if req.Note != nil {
		updated.Note = strings.TrimSpace(*req.Note)
	}

	if req.Services != nil {
		lines, err := s.resolveLines(ctx, *req.Services, updated.CheckIn, updated.CheckOut)
		if err != nil {
			return nil, err
		}
		updated.Services = lines
	} else {
		// Dates may have moved under the existing lines.
		for _, line := range updated.Services {
			if err := validateLineDates(line.StartDate, line.EndDate, updated.CheckIn, updated.CheckOut); err != nil {
				return nil, err
			}
		}
	}

	// Changed guest details resolve to a (possibly new) customer record;
	// customers are matched only on the exact name+phone+email triple.
	if req.Name != nil || req.Phone != nil || req.Email != nil {
		current, err := s.repo.Customer.FindByID(ctx, invoice.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("find customer: %w", err)
		}
		name, phone, email := "", "", ""
		if current != nil {
			name, phone, email = current.Name, current.Phone, current.Email
		}
		if req.Name != nil {
			name = *req.Name
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}

		customer, err := s.resolveCustomer(ctx, caller, name, phone, email)
		if err != nil {
			return nil, err
		}
		updated.CustomerID = customer.ID
	}

	if err := s.recomputeAndSave(ctx, &updated); err != nil {
		return nil, err
	}

	s.log.Info("Invoice updated",
		zap.String("invoice_id", updated.ID.String()),
		zap.String("order_id", updated.OrderID),
		zap.Int64("total_amount", updated.TotalAmount),
	)

	return s.buildInvoiceResponse(ctx, &updated), nil
}

func (s *invoiceService) TransitionStatus(ctx context.Context, caller Caller, invoiceID string, target entity.InvoiceStatus) (*response.InvoiceResponse, error) {
	// Payment carries extra bookkeeping (charge recompute, paid-by stamp,
	// effective checkout); the dedicated path owns it.
	if target == entity.StatusPaid {
		return s.RecordPayment(ctx, caller, invoiceID)
	}

	invoice, err := s.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status.Terminal() {
		return nil, ErrInvoiceTerminal
	}
	if !invoice.Status.CanTransitionTo(target) {
		return nil, ErrIllegalTransition
	}

	now := time.Now()
	updated := *invoice
	updated.Status = target
	updated.UpdatedAt = now

	ok, err := s.repo.Invoice.UpdateVersioned(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("update invoice status: %w", err)
	}
	if !ok {
		return nil, ErrVersionConflict
	}

	// Cancellation frees the room. Release is idempotent, so a room this
	// invoice never actually held is a harmless no-op.
	if target == entity.StatusCancelled {
		if err := s.repo.Room.Release(ctx, invoice.RoomID); err != nil {
			s.log.Error("Failed to release room on cancellation",
				zap.Error(err),
				zap.String("invoice_id", invoice.ID.String()),
				zap.String("room_id", invoice.RoomID.String()),
			)
			return nil, fmt.Errorf("release room: %w", err)
		}
	}

	s.log.Info("Invoice status changed",
		zap.String("invoice_id", updated.ID.String()),
		zap.String("order_id", updated.OrderID),
		zap.String("from", string(invoice.Status)),
		zap.String("to", string(target)),
	)

	s.events.PublishStatusChanged(notifier.StatusChangedEvent{
		OrderID: updated.OrderID,
		Status:  string(target),
		Time:    now,
	})

	return s.buildInvoiceResponse(ctx, &updated), nil
}

func (s *invoiceService) RecordPayment(ctx context.Context, caller Caller, invoiceID string) (*response.InvoiceResponse, error) {
	invoice, err := s.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status.Terminal() {
		return nil, ErrInvoiceTerminal
	}
	if invoice.Status != entity.StatusAwaitingPayment {
		return nil, ErrIllegalTransition
	}

	now := time.Now()

	// Paying before the stay begins is rejected; with no recorded
	// check-out there is nothing to charge yet.
	if invoice.CheckOut == nil && invoice.CheckIn.After(now) {
		return nil, ErrStayNotStarted
	}

	room, err := s.repo.Room.FindByID(ctx, invoice.RoomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	updated := *invoice
	updated.Services = append([]entity.ServiceLine(nil), invoice.Services...)

	// Open-ended service lines settle against now, clamped so a line
	// that never started is charged its one-day minimum.
	for i, line := range updated.Services {
		if line.EndDate == nil {
			end := now
			if end.Before(line.StartDate) {
				end = line.StartDate
			}
			updated.Services[i].EndDate = &end
		}
	}

	items, err := s.priceItems(ctx, updated.Services)
	if err != nil {
		return nil, err
	}

	quote := pricing.ComputeCharges(room.Price, updated.CheckIn, updated.CheckOut, items, now)
	if updated.CheckOut == nil {
		// The stay ran open-ended; the synthesized checkout becomes part
		// of the record at the moment of payment.
		updated.CheckOut = quote.EffectiveCheckOut
	}

	callerID := caller.ID
	updated.RoomCharge = quote.RoomCharge
	updated.ServiceCharge = quote.ServiceCharge
	updated.TotalAmount = quote.TotalAmount
	updated.Status = entity.StatusPaid
	updated.PaidAt = &now
	updated.PaidBy = &callerID
	updated.UpdatedAt = now

	ok, err := s.repo.Invoice.UpdateVersioned(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}
	if !ok {
		return nil, ErrVersionConflict
	}

	// Payment checks the guest out; the room goes back on the market.
	if err := s.repo.Room.Release(ctx, invoice.RoomID); err != nil {
		s.log.Error("Failed to release room after payment",
			zap.Error(err),
			zap.String("invoice_id", invoice.ID.String()),
			zap.String("room_id", invoice.RoomID.String()),
		)
		return nil, fmt.Errorf("release room: %w", err)
	}

	s.log.Info("Payment recorded",
		zap.String("invoice_id", updated.ID.String()),
		zap.String("order_id", updated.OrderID),
		zap.String("paid_by", caller.ID.String()),
		zap.Int64("total_amount", updated.TotalAmount),
	)

	s.events.PublishStatusChanged(notifier.StatusChangedEvent{
		OrderID: updated.OrderID,
		Status:  string(entity.StatusPaid),
		Time:    now,
	})

	return s.buildInvoiceResponse(ctx, &updated), nil
}

// ==================== HELPER METHODS ====================

func (s *invoiceService) loadInvoice(ctx context.Context, invoiceID string) (*entity.Invoice, error) {
	id, err := uuid.Parse(invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid invoice ID format %s: %w", invoiceID, err)
	}

	invoice, err := s.repo.Invoice.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find invoice: %w", err)
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return invoice, nil
}

// resolveLines parses, validates, and type-checks requested service
// lines against the stay interval and the catalog.
func (s *invoiceService) resolveLines(ctx context.Context, reqs []request.ServiceLineRequest, checkIn time.Time, checkOut *time.Time) ([]entity.ServiceLine, error) {
	if len(reqs) == 0 {
		return nil, nil
	}

	lines := make([]entity.ServiceLine, 0, len(reqs))
	for _, lr := range reqs {
		serviceID, err := uuid.Parse(lr.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("invalid service ID format %s: %w", lr.ServiceID, err)
		}

		service, err := s.repo.Service.FindByID(ctx, serviceID)
		if err != nil {
			return nil, fmt.Errorf("check service: %w", err)
		}
		if service == nil {
			return nil, ErrServiceNotFound
		}
		if !service.IsAvailable {
			return nil, ErrServiceUnavailable
		}

		startDate, err := parseDate(lr.StartDate)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		endDate, err := parseDatePtr(lr.EndDate)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		if err := validateLineDates(startDate, endDate, checkIn, checkOut); err != nil {
			return nil, err
		}

		lines = append(lines, entity.ServiceLine{
			ServiceID: serviceID,
			Quantity:  lr.Quantity,
			StartDate: startDate,
			EndDate:   endDate,
		})
	}

	return lines, nil
}

// priceItems turns stored service lines into pricing engine input,
// joining unit prices from the catalog. Lines whose catalog entry has
// vanished keep a zero price and charge nothing.
func (s *invoiceService) priceItems(ctx context.Context, lines []entity.ServiceLine) ([]pricing.ServiceItem, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ServiceID)
	}

	services, err := s.repo.Service.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load services for pricing: %w", err)
	}

	priceByID := make(map[uuid.UUID]int64, len(services))
	for _, service := range services {
		priceByID[service.ID] = service.Price
	}

	items := make([]pricing.ServiceItem, len(lines))
	for i, line := range lines {
		items[i] = pricing.ServiceItem{
			UnitPrice: priceByID[line.ServiceID],
			Quantity:  line.Quantity,
			StartDate: line.StartDate,
			EndDate:   line.EndDate,
		}
	}

	return items, nil
}

// recomputeAndSave reprices the aggregate and writes it under the
// optimistic version check. The room charge invariant
// (roomCharge + serviceCharge == totalAmount) holds after every call.
func (s *invoiceService) recomputeAndSave(ctx context.Context, invoice *entity.Invoice) error {
	room, err := s.repo.Room.FindByID(ctx, invoice.RoomID)
	if err != nil {
		return fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return ErrRoomNotFound
	}

	items, err := s.priceItems(ctx, invoice.Services)
	if err != nil {
		return err
	}

	quote := pricing.ComputeCharges(room.Price, invoice.CheckIn, invoice.CheckOut, items, time.Now())
	invoice.RoomCharge = quote.RoomCharge
	invoice.ServiceCharge = quote.ServiceCharge
	invoice.TotalAmount = quote.TotalAmount
	invoice.UpdatedAt = time.Now()

	ok, err := s.repo.Invoice.UpdateVersioned(ctx, invoice)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if !ok {
		return ErrVersionConflict
	}

	return nil
}

func (s *invoiceService) buildInvoiceResponse(ctx context.Context, invoice *entity.Invoice) *response.InvoiceResponse {
	resp := &response.InvoiceResponse{
		ID:            invoice.ID.String(),
		OrderID:       invoice.OrderID,
		CheckIn:       response.FormatDate(invoice.CheckIn),
		CheckOut:      response.FormatDatePtr(invoice.CheckOut),
		Note:          invoice.Note,
		BookedBy:      invoice.BookedBy,
		PaidAt:        invoice.PaidAt,
		RoomCharge:    invoice.RoomCharge,
		ServiceCharge: invoice.ServiceCharge,
		TotalAmount:   invoice.TotalAmount,
		Status:        invoice.Status,
		CreatedAt:     invoice.CreatedAt,
	}

	customer, _ := s.repo.Customer.FindByID(ctx, invoice.CustomerID)
	if customer != nil {
		c := response.CustomerToResponse(customer)
		resp.Customer = &c
	}

	room, _ := s.repo.Room.FindByID(ctx, invoice.RoomID)
	resp.Room = response.RoomToSummary(room)

	if invoice.PaidBy != nil {
		payer, _ := s.repo.User.FindByID(ctx, *invoice.PaidBy)
		if payer != nil {
			p := response.UserToResponse(payer)
			resp.PaidBy = &p
		}
	}

	resp.Services = make([]response.ServiceLineResponse, len(invoice.Services))
	for i, line := range invoice.Services {
		lineResp := response.ServiceLineResponse{
			ServiceID: line.ServiceID.String(),
			Quantity:  line.Quantity,
			StartDate: response.FormatDate(line.StartDate),
			EndDate:   response.FormatDatePtr(line.EndDate),
		}

		service, _ := s.repo.Service.FindByID(ctx, line.ServiceID)
		if service != nil {
			lineResp.Name = service.Name
			lineResp.UnitPrice = service.Price
			lineResp.Amount = pricing.ItemCharge(pricing.ServiceItem{
				UnitPrice: service.Price,
				Quantity:  line.Quantity,
				StartDate: line.StartDate,
				EndDate:   line.EndDate,
			})
		}

		resp.Services[i] = lineResp
	}

	return resp
}

// validateLineDates enforces the stay-interval invariants for a service
// line: start within the stay, end after start and not past check-out.
func validateLineDates(startDate time.Time, endDate *time.Time, checkIn time.Time, checkOut *time.Time) error {
	if startDate.Before(checkIn) {
		return ErrInvalidDateRange
	}
	if endDate != nil {
		if !endDate.After(startDate) {
			return ErrInvalidDateRange
		}
		if checkOut != nil && endDate.After(*checkOut) {
			return ErrInvalidDateRange
		}
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func sameDay(a, b time.Time) bool {
	return a.Format(dateLayout) == b.Format(dateLayout)
}

func sameDayPtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return sameDay(*a, *b)
}
