package request

// Dates travel as "2006-01-02" strings and are parsed by the service.

type CreateBookingRequest struct {
	Name     string               `json:"name" validate:"required,min=2,max=100"`
	Phone    string               `json:"phone" validate:"required"`
	Email    string               `json:"email" validate:"required,email"`
	RoomID   string               `json:"room_id" validate:"required,uuid4"`
	CheckIn  string               `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut *string              `json:"check_out,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Note     *string              `json:"note,omitempty"`
	Services []ServiceLineRequest `json:"services,omitempty" validate:"omitempty,dive"`
}

type ServiceLineRequest struct {
	ServiceID string  `json:"service_id" validate:"required,uuid4"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type AddServiceRequest struct {
	ServiceID string  `json:"service_id" validate:"required,uuid4"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateInvoiceRequest patches a non-terminal invoice; only non-nil
// fields are applied.
type UpdateInvoiceRequest struct {
	Name     *string               `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone    *string               `json:"phone,omitempty"`
	Email    *string               `json:"email,omitempty" validate:"omitempty,email"`
	Note     *string               `json:"note,omitempty"`
	CheckIn  *string               `json:"check_in,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CheckOut *string               `json:"check_out,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Services *[]ServiceLineRequest `json:"services,omitempty" validate:"omitempty,dive"`
}

type TransitionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=awaiting_confirmation awaiting_payment paid cancelled"`
}
