package request

type CreateRoomRequest struct {
	Number   string `json:"number" validate:"required"`
	RoomType string `json:"room_type" validate:"required,oneof=ROOM_NORMAL ROOM_VIP"`
	BedType  string `json:"bed_type" validate:"required,oneof=SINGLE DOUBLE"`
	Price    int64  `json:"price" validate:"required,gt=0"`
	Img      string `json:"img,omitempty"`
}

// UpdateRoomRequest is a partial update; only non-nil fields are applied.
// Availability is deliberately absent: it is owned by the invoice
// lifecycle, never by an administrative edit.
type UpdateRoomRequest struct {
	Number   *string `json:"number,omitempty"`
	RoomType *string `json:"room_type,omitempty" validate:"omitempty,oneof=ROOM_NORMAL ROOM_VIP"`
	BedType  *string `json:"bed_type,omitempty" validate:"omitempty,oneof=SINGLE DOUBLE"`
	Price    *int64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	Img      *string `json:"img,omitempty"`
	IsHidden *bool   `json:"is_hidden,omitempty"`
}
