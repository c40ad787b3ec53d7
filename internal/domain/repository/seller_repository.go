package repository

import (
	"context"

	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// SellerRepository define el puerto de persistencia para Seller (DIP).
type SellerRepository interface {
	Create(ctx context.Context, seller *entity.Seller) error
	GetByID(ctx context.Context, id string) (*entity.Seller, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Seller, error)
	List(ctx context.Context) ([]*entity.Seller, error)
	Update(ctx context.Context, seller *entity.Seller) error
	Delete(ctx context.Context, id string) error
}
