package entity

import "time"

// Seller representa un proveedor/vendedor que mantiene stock de productos.
type Seller struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
