package response

import (
	"hotel-booking/internal/data/entity"
)

type ServiceResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	DescShort   string   `json:"desc_short"`
	DescLong    string   `json:"desc_long"`
	Images      []string `json:"images,omitempty"`
	IsAvailable bool     `json:"is_available"`
}

func ServiceToResponse(service *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:          service.ID.String(),
		Name:        service.Name,
		Price:       service.Price,
		DescShort:   service.DescShort,
		DescLong:    service.DescLong,
		Images:      service.Images,
		IsAvailable: service.IsAvailable,
	}
}
