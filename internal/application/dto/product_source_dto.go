package dto

import "time"

// ProductSourceForm campos del formulario de stock por vendedor.
type ProductSourceForm struct {
	ProductID string `json:"product_id" form:"product_id" validate:"required"`
	SellerID  string `json:"seller_id" form:"seller_id" validate:"required"`
	Quantity  string `json:"quantity" form:"quantity" validate:"required"`
}

// ProductSourceResponse salida de un registro de stock.
type ProductSourceResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	SellerID  string    `json:"seller_id"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
