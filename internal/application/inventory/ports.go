package inventory

import (
	"context"

	"github.com/jhoicas/inventario-web/internal/domain/repository"
)

// TxRunner ejecuta una función contra repositorios atados a una transacción de BD.
// Run es de lectura/escritura: si fn devuelve error nada de lo escrito queda visible.
// View entrega un snapshot consistente de solo lectura.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repositories) error) error
	View(ctx context.Context, fn func(repos repository.Repositories) error) error
}
