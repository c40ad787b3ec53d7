package entity

import "time"

// ProductSource indica que un vendedor tiene Quantity unidades de un producto.
type ProductSource struct {
	ID        string
	ProductID string
	SellerID  string
	Quantity  int64 // nunca negativa
	CreatedAt time.Time
	UpdatedAt time.Time
}
