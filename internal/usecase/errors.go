package usecase

import "errors"

// Recoverable domain failures. Every rejected operation leaves the
// aggregate exactly as it was before the call.
var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomUnavailable    = errors.New("room is already booked")
	ErrRoomOccupied       = errors.New("room is held by an active invoice")
	ErrRoomNumberTaken    = errors.New("room number already exists")
	ErrServiceNotFound    = errors.New("service not found")
	ErrServiceUnavailable = errors.New("service is currently unavailable")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvoiceTerminal    = errors.New("invoice is already paid or cancelled")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrStayNotStarted     = errors.New("stay has not started yet")
	ErrVersionConflict    = errors.New("invoice was modified by someone else, retry")
	ErrForbidden          = errors.New("not allowed to modify this invoice")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
