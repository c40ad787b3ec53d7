package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductForm campos del formulario de producto. Llegan como texto y se convierten
// en el caso de uso (price → decimal, category_id → UUID).
type ProductForm struct {
	Name       string `json:"name" form:"name" validate:"required,max=100"`
	Price      string `json:"price" form:"price" validate:"required"`
	CategoryID string `json:"category_id" form:"category_id" validate:"required"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	CategoryID string          `json:"category_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
