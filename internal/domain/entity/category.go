package entity

import "time"

// Category agrupa productos. Una categoría puede no tener productos.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
