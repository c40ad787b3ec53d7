package dto

import "time"

// SellerForm campos del formulario de vendedor.
type SellerForm struct {
	Name string `json:"name" form:"name" validate:"required,max=100"`
}

// SellerResponse salida de un vendedor.
type SellerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
