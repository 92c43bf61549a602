package entity

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	StatusAwaitingConfirmation InvoiceStatus = "awaiting_confirmation"
	StatusAwaitingPayment      InvoiceStatus = "awaiting_payment"
	StatusPaid                 InvoiceStatus = "paid"
	StatusCancelled            InvoiceStatus = "cancelled"
)

// Terminal reports whether no further mutation of the invoice is allowed.
func (s InvoiceStatus) Terminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// CanTransitionTo validates the status graph:
// awaiting_confirmation -> awaiting_payment -> paid, with cancellation
// allowed from either non-terminal state.
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	switch s {
	case StatusAwaitingConfirmation:
		return target == StatusAwaitingPayment || target == StatusCancelled
	case StatusAwaitingPayment:
		return target == StatusPaid || target == StatusCancelled
	default:
		return false
	}
}

// ServiceLine is a service entry embedded in the invoice, with its own
// quantity and date range. Stored as a jsonb array, not a join table.
type ServiceLine struct {
	ServiceID uuid.UUID  `json:"service_id"`
	Quantity  int        `json:"quantity"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// Invoice is the booking/billing aggregate covering one room stay,
// its services, and payment status.
type Invoice struct {
	Base
	OrderID       string        `db:"order_id"`
	CustomerID    uuid.UUID     `db:"customer_id"`
	RoomID        uuid.UUID     `db:"room_id"`
	CheckIn       time.Time     `db:"check_in"`
	CheckOut      *time.Time    `db:"check_out"` // nil = open-ended stay
	Services      []ServiceLine `db:"services"`
	Note          string        `db:"note"`
	BookedBy      string        `db:"booked_by"` // display name of the booking caller
	CreatedBy     uuid.UUID     `db:"created_by"`
	PaidBy        *uuid.UUID    `db:"paid_by"` // staff member who recorded payment
	PaidAt        *time.Time    `db:"paid_at"`
	RoomCharge    int64         `db:"room_charge"`
	ServiceCharge int64         `db:"service_charge"`
	TotalAmount   int64         `db:"total_amount"`
	Status        InvoiceStatus `db:"status"`
	Version       int64         `db:"version"` // optimistic concurrency counter
}
