package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. CategoryID debe apuntar a una Category existente
// al momento de crear o editar; tras un borrado sin cascada puede quedar colgando.
type Product struct {
	ID         string
	Name       string
	Price      decimal.Decimal // precio unitario, nunca negativo
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
