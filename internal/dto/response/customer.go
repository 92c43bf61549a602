package response

import (
	"hotel-booking/internal/data/entity"
)

type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:    customer.ID.String(),
		Name:  customer.Name,
		Phone: customer.Phone,
		Email: customer.Email,
	}
}
