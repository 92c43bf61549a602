package request

type CreateServiceRequest struct {
	Name      string   `json:"name" validate:"required,min=2,max=200"`
	Price     int64    `json:"price" validate:"required,gt=0"`
	DescShort string   `json:"desc_short" validate:"required"`
	DescLong  string   `json:"desc_long" validate:"required"`
	Images    []string `json:"images,omitempty"`
}

type UpdateServiceRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Price       *int64    `json:"price,omitempty" validate:"omitempty,gt=0"`
	DescShort   *string   `json:"desc_short,omitempty"`
	DescLong    *string   `json:"desc_long,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	IsAvailable *bool     `json:"is_available,omitempty"`
}
