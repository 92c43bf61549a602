package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InvoiceHandler struct {
	service usecase.InvoiceService
	log     *zap.Logger
}

func NewInvoiceHandler(service usecase.InvoiceService, log *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		service: service,
		log:     log.With(zap.String("handler", "invoice")),
	}
}

// CreateBooking handles POST /api/v1/invoices (protected)
func (h *InvoiceHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	invoice, err := h.service.CreateBooking(r.Context(), caller, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", invoice)
}

// GetMyInvoices handles GET /api/v1/invoices/mine (protected)
func (h *InvoiceHandler) GetMyInvoices(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	invoices, err := h.service.GetMyInvoices(r.Context(), caller)
	if err != nil {
		handleServiceError(w, h.log, err, "get my invoices")
		return
	}

	utils.ResponseSuccess(w, "success", invoices)
}

// GetInvoiceByID handles GET /api/v1/invoices/{id} (protected; owner or staff)
func (h *InvoiceHandler) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	invoiceID := chi.URLParam(r, "id")
	if invoiceID == "" {
		utils.ResponseBadRequest(w, "Invoice ID is required", nil)
		return
	}

	invoice, err := h.service.GetInvoiceByID(r.Context(), caller, invoiceID)
	if err != nil {
		handleServiceError(w, h.log, err, "get invoice by ID")
		return
	}

	utils.ResponseSuccess(w, "success", invoice)
}

// AddService handles POST /api/v1/invoices/{id}/services (protected)
func (h *InvoiceHandler) AddService(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	invoiceID := chi.URLParam(r, "id")
	if invoiceID == "" {
		utils.ResponseBadRequest(w, "Invoice ID is required", nil)
		return
	}

	var req request.AddServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	invoice, err := h.service.AddService(r.Context(), caller, invoiceID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add service")
		return
	}

	utils.ResponseSuccess(w, "success", invoice)
}

// UpdateInvoice handles PATCH /api/v1/invoices/{id} (protected)
func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	invoiceID := chi.URLParam(r, "id")
	if invoiceID == "" {
		utils.ResponseBadRequest(w, "Invoice ID is required", nil)
		return
	}

	var req request.UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	invoice, err := h.service.EditInvoice(r.Context(), caller, invoiceID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update invoice")
		return
	}

	utils.ResponseSuccess(w, "success", invoice)
}

// ==================== STAFF METHODS ====================

// GetAllInvoices handles GET /api/v1/admin/invoices (staff only)
func (h *InvoiceHandler) GetAllInvoices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	invoices, err := h.service.GetAllInvoices(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get all invoices")
		return
	}

	utils.ResponseSuccess(w, "success", invoices)
}

// TransitionStatus handles PATCH /api/v1/admin/invoices/{id}/status (staff only)
func (h *InvoiceHandler) TransitionStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	invoiceID := chi.URLParam(r, "id")
	if invoiceID == "" {
		utils.ResponseBadRequest(w, "Invoice ID is required", nil)
		return
	}

	var req request.TransitionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	invoice, err := h.service.TransitionStatus(r.Context(), caller, invoiceID, entity.InvoiceStatus(req.Status))
	if err != nil {
		handleServiceError(w, h.log, err, "transition status")
		return
	}

	utils.ResponseSuccess(w, "success", invoice)
}

// RecordPayment handles PATCH /api/v1/admin/invoices/{id}/pay (staff only)
func (h *InvoiceHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	invoiceID := chi.URLParam(r, "id")
	if invoiceID == "" {
		utils.ResponseBadRequest(w, "Invoice ID is required", nil)
		return
	}

	invoice, err := h.service.RecordPayment(r.Context(), caller, invoiceID)
	if err != nil {
		handleServiceError(w, h.log, err, "record payment")
		return
	}

	utils.ResponseSuccess(w, "success", invoice)
}
