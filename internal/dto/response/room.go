package response

import (
	"hotel-booking/internal/data/entity"
)

// ActiveInvoiceRef points a room at the non-terminal invoice holding it.
type ActiveInvoiceRef struct {
	InvoiceID string               `json:"invoice_id"`
	Status    entity.InvoiceStatus `json:"status"`
}

type RoomResponse struct {
	ID            string            `json:"id"`
	Number        string            `json:"number"`
	RoomType      entity.RoomType   `json:"room_type"`
	BedType       entity.BedType    `json:"bed_type"`
	Price         int64             `json:"price"`
	Img           string            `json:"img,omitempty"`
	IsAvailable   bool              `json:"is_available"`
	IsHidden      bool              `json:"is_hidden"`
	ActiveInvoice *ActiveInvoiceRef `json:"active_invoice,omitempty"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID.String(),
		Number:      room.Number,
		RoomType:    room.RoomType,
		BedType:     room.BedType,
		Price:       room.Price,
		Img:         room.Img,
		IsAvailable: room.IsAvailable,
		IsHidden:    room.IsHidden,
	}
}
