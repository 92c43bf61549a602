package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

const dateLayout = "2006-01-02"

type RoomSummary struct {
	ID       string          `json:"id"`
	Number   string          `json:"number"`
	RoomType entity.RoomType `json:"room_type"`
	BedType  entity.BedType  `json:"bed_type"`
	Price    int64           `json:"price"`
}

type ServiceLineResponse struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name,omitempty"`
	UnitPrice int64   `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
	Amount    int64   `json:"amount"`
}

type InvoiceResponse struct {
	ID            string                `json:"id"`
	OrderID       string                `json:"order_id"`
	Customer      *CustomerResponse     `json:"customer,omitempty"`
	Room          *RoomSummary          `json:"room,omitempty"`
	CheckIn       string                `json:"check_in"`
	CheckOut      *string               `json:"check_out,omitempty"`
	Services      []ServiceLineResponse `json:"services"`
	Note          string                `json:"note,omitempty"`
	BookedBy      string                `json:"booked_by"`
	PaidBy        *UserResponse         `json:"paid_by,omitempty"`
	PaidAt        *time.Time            `json:"paid_at,omitempty"`
	RoomCharge    int64                 `json:"room_charge"`
	ServiceCharge int64                 `json:"service_charge"`
	TotalAmount   int64                 `json:"total_amount"`
	Status        entity.InvoiceStatus  `json:"status"`
	CreatedAt     time.Time             `json:"created_at"`
}

func RoomToSummary(room *entity.Room) *RoomSummary {
	if room == nil {
		return nil
	}
	return &RoomSummary{
		ID:       room.ID.String(),
		Number:   room.Number,
		RoomType: room.RoomType,
		BedType:  room.BedType,
		Price:    room.Price,
	}
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
