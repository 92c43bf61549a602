package entity

import "github.com/google/uuid"

// Customer is the party staying in the room. It may differ from the
// account that created the booking.
type Customer struct {
	Base
	Name   string     `db:"name"`
	Phone  string     `db:"phone"`
	Email  string     `db:"email"`
	UserID *uuid.UUID `db:"user_id"` // booking account that first created it, if any
}
