package repository

import (
	"context"

	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// ProductSourceRepository define el puerto de persistencia para el stock por vendedor.
// Las búsquedas por producto y por vendedor reemplazan las relaciones inversas del modelo.
type ProductSourceRepository interface {
	Create(ctx context.Context, source *entity.ProductSource) error
	GetByID(ctx context.Context, id string) (*entity.ProductSource, error)
	GetForUpdate(ctx context.Context, id string) (*entity.ProductSource, error)
	List(ctx context.Context) ([]*entity.ProductSource, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.ProductSource, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.ProductSource, error)
	Update(ctx context.Context, source *entity.ProductSource) error
	Delete(ctx context.Context, id string) error
}
