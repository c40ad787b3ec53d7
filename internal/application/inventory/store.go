package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/domain/repository"
)

// ProductFields campos mutables de un producto.
type ProductFields struct {
	Name       string
	Price      decimal.Decimal
	CategoryID string
}

// ProductSourceFields campos mutables de un registro de stock.
type ProductSourceFields struct {
	ProductID string
	SellerID  string
	Quantity  int64
}

// Snapshot contenido completo del inventario leído en una sola vista consistente.
type Snapshot struct {
	Categories     []*entity.Category
	Products       []*entity.Product
	Sellers        []*entity.Seller
	ProductSources []*entity.ProductSource
}

// Store es el único escritor del inventario. Asigna IDs y timestamps, valida las referencias
// entre entidades y aplica la DeletePolicy. Cada operación corre en su propia transacción.
// Los nombres se copian al entrar: pueden apuntar a buffers del request que fiber reutiliza.
type Store struct {
	tx     TxRunner
	policy DeletePolicy
	now    func() time.Time
}

// NewStore construye el Store sobre el backend indicado.
func NewStore(tx TxRunner, policy DeletePolicy) *Store {
	if policy == "" {
		policy = DeleteOrphan
	}
	return &Store{
		tx:     tx,
		policy: policy,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// Policy devuelve la política de borrado activa.
func (s *Store) Policy() DeletePolicy { return s.policy }

// ── Category ─────────────────────────────────────────────────────────────────

// CreateCategory inserta una categoría nueva.
func (s *Store) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	now := s.now()
	c := &entity.Category{ID: uuid.New().String(), Name: strings.Clone(name), CreatedAt: now, UpdatedAt: now}
	err := s.tx.Run(ctx, func(r repository.Repositories) error {
		return r.Categories.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetCategory obtiene una categoría; domain.ErrNotFound si no existe.
func (s *Store) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	var c *entity.Category
	err := s.tx.View(ctx, func(r repository.Repositories) error {
		var err error
		c, err = r.Categories.GetByID(ctx, id)
		return err
	})
	return c, err
}

// ListCategories lista todas las categorías en orden de creación.
func (s *Store) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var list []*entity.Category
	err := s.tx.View(ctx, func(r repository.Repositories) error {
		var err error
		list, err = r.Categories.List(ctx)
		return err
	})
	return list, err
}

// UpdateCategory reemplaza el nombre de la categoría.
func (s *Store) UpdateCategory(ctx context.Context, id, name string) (*entity.Category, error) {
	var c *entity.Category
	err := s.tx.Run(ctx, func(r repository.Repositories) error {
		var err error
		if c, err = r.Categories.GetForUpdate(ctx, id); err != nil {
			return err
		}
		c.Name = strings.Clone(name)
		c.UpdatedAt = s.now()
		return r.Categories.Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory borra la categoría aplicando la política de borrado sobre sus productos.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	return s.tx.Run(ctx, func(r repository.Repositories) error {
		if _, err := r.Categories.GetForUpdate(ctx, id); err != nil {
			return err
		}
		if s.policy != DeleteOrphan {
			products, err := r.Products.ListByCategory(ctx, id)
			if err != nil {
				return err
			}
			if len(products) > 0 && s.policy == DeleteRestrict {
				return fmt.Errorf("%w: la categoría tiene %d productos", domain.ErrConflict, len(products))
			}
			for _, p := range products {
				if err := deleteProductCascade(ctx, r, p.ID); err != nil {
					return err
				}
			}
		}
		return r.Categories.Delete(ctx, id)
	})
}

// ── Product ──────────────────────────────────────────────────────────────────

// CreateProduct inserta un producto. La categoría debe existir (domain.ErrReferential).
func (s *Store) CreateProduct(ctx context.Context, f ProductFields) (*entity.Product, error) {
	if err := checkPrice(f.Price); err != nil {
		return nil, err
	}
	now := s.now()
	p := &entity.Product{
		ID:         uuid.New().String(),
		Name:       strings.Clone(f.Name),
		Price:      f.Price,
		CategoryID: f.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := s.tx.Run(ctx, func(r repository.Repositories) error {
		if err := requireCategory(ctx, r, f.CategoryID); err != nil {
			return err
		}
		return r.Products.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetProduct obtiene un producto; domain.ErrNotFound si no existe.
func (s *Store) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	var p *entity.Product
	err := s.tx.View(ctx, func(r repository.Repositories) error {
		var err error
		p, err = r.Products.GetByID(ctx, id)
		return err
	})
	return p, err
}

// ListProducts lista todos los productos en orden de creación.
func (s *Store) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	err := s.tx.View(ctx, func(r repository.Repositories) error {
		var err error
		list, err = r.Products.List(ctx)
		return err
	})
	return list, err
}

// UpdateProduct reemplaza nombre, precio y categoría. Si la nueva categoría no existe
// no se modifica nada.
func (s *Store) UpdateProduct(ctx context.Context, id string, f ProductFields) (*entity.Product, error) {
	if err := checkPrice(f.Price); err != nil {
		return nil, err
	}
	var p *entity.Product
	err := s.tx.Run(ctx, func(r repository.Repositories) error {
		var err error
		if p, err = r.Products.GetForUpdate(ctx, id); err != nil {
			return err
		}
		if err := requireCategory(ctx, r, f.CategoryID); err != nil {
			return err
		}
		p.Name = strings.Clone(f.Name)
		p.Price = f.Price
		p.CategoryID = f.CategoryID
		p.UpdatedAt = s.now()
		return r.Products.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct borra el producto aplicando la política de borrado sobre su stock.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	return s.tx.Run(ctx, func(r repository.Repositories) error {
		if _, err := r.Products.GetForUpdate(ctx, id); err != nil {
			return err
		}
		switch s.policy {
		case DeleteRestrict:
			sources, err := r.ProductSources.ListByProduct(ctx, id)
			if err != nil {
				return err
			}
			if len(sources) > 0 {
				return fmt.Errorf("%w: el producto tiene %d registros de stock", domain.ErrConflict, len(sources))
			}
		case DeleteCascade:
			return deleteProductCascade(ctx, r, id)
		}
		return r.Products.Delete(ctx, id)
	})
}

// ── Seller ───────────────────────────────────────────────────────────────────

// CreateSeller inserta un vendedor nuevo.
func (s *Store) CreateSeller(ctx context.Context, name string) (*entity.Seller, error) {
	now := s.now()
	sl := &entity.Seller{ID: uuid.New().String(), Name: strings.Clone(name), CreatedAt: now, UpdatedAt: now}
	err := s.tx.Run(ctx, func(r repository.Repositories) error {
		return r.Sellers.Create(ctx, sl)
	})
	if err != nil {
		return nil, err
	}
	return sl, nil
}

// GetSeller obtiene un vendedor; domain.ErrNotFound si no existe.
func (s *Store) GetSeller(ctx context.Context, id string) (*entity.Seller, error) {
	var sl *entity.Seller
	err := s.tx.View(ctx, func(r repository.Repositories) error {
		var err error
		sl, err = r.Sellers.GetByID(ctx, id)
		return err
	})
	return sl, err
}

// ListSellers lista todos los vendedores en orden de creación.
func (s *Store) ListSellers(ctx context.Context) ([]*entity.Seller, error) {
	var list []*entity.Seller
	err := s.tx.View(ctx, func(r repository.Repositories) error {
		var err error
		list, err = r.Sellers.List(ctx)
		return err
	})
	return list, err
}

// UpdateSeller reemplaza el nombre del vendedor.
func (s *Store) UpdateSeller(ctx context.Context, id, name string) (*entity.Seller, error) {
	var sl *entity.Seller
	err := s.tx.Run(ctx, func(r repository.Repositories) error {
		var err error
		if sl, err = r.Sellers.GetForUpdate(ctx, id); err != nil {
			return err
		}
		sl.Name = strings.Clone(name)
		sl.UpdatedAt = s.now()
		return r.Sellers.Update(ctx, sl)
	})
	if err != nil {
		return nil, err
	}
	return sl, nil
}

// DeleteSeller borra el vendedor aplicando la política de borrado sobre su stock.
func (s *Store) DeleteSeller(ctx context.Context, id string) error {
	return s.tx.Run(ctx, func(r repository.Repositories) error {
		if _, err := r.Sellers.GetForUpdate(ctx, id); err != nil {
			return err
		}
		if s.policy != DeleteOrphan {
			sources, err := r.ProductSources.ListBySeller(ctx, id)
			if err != nil {
				return err
			}
			if len(sources) > 0 && s.policy == DeleteRestrict {
				return fmt.Errorf("%w: el vendedor tiene %d registros de stock", domain.ErrConflict, len(sources))
			}
			for _, src := range sources {
				if err := r.ProductSources.Delete(ctx, src.ID); err != nil {
					return err
				}
			}
		}
		return r.Sellers.Delete(ctx, id)
	})
}

// ── ProductSource ────────────────────────────────────────────────────────────

// CreateProductSource inserta un registro de stock. Producto y vendedor deben existir.
func (s *Store) CreateProductSource(ctx context.Context, f ProductSourceFields) (*entity.ProductSource, error) {
	if err := checkQuantity(f.Quantity); err != nil {
		return nil, err
	}
	now := s.now()
	src := &entity.ProductSource{
		ID:        uuid.New().String(),
		ProductID: f.ProductID,
		SellerID:  f.SellerID,
		Quantity:  f.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.tx.Run(ctx, func(r repository.Repositories) error {
		if err := requireProductAndSeller(ctx, r, f.ProductID, f.SellerID); err != nil {
			return err
		}
		return r.ProductSources.Create(ctx, src)
	})
	if err != nil {
		return nil, err
	}
	return src, nil
}

// GetProductSource obtiene un registro de stock; domain.ErrNotFound si no existe.
func (s *Store) GetProductSource(ctx context.Context, id string) (*entity.ProductSource, error) {
	var src *entity.ProductSource
	err := s.tx.View(ctx, func(r repository.Repositories) error {
		var err error
		src, err = r.ProductSources.GetByID(ctx, id)
		return err
	})
	return src, err
}

// ListProductSources lista todo el stock en orden de creación.
func (s *Store) ListProductSources(ctx context.Context) ([]*entity.ProductSource, error) {
	var list []*entity.ProductSource
	err := s.tx.View(ctx, func(r repository.Repositories) error {
		var err error
		list, err = r.ProductSources.List(ctx)
		return err
	})
	return list, err
}

// UpdateProductSource reemplaza producto, vendedor y cantidad. La fila queda bloqueada
// durante la transacción, así dos ediciones concurrentes no se mezclan.
func (s *Store) UpdateProductSource(ctx context.Context, id string, f ProductSourceFields) (*entity.ProductSource, error) {
	if err := checkQuantity(f.Quantity); err != nil {
		return nil, err
	}
	var src *entity.ProductSource
	err := s.tx.Run(ctx, func(r repository.Repositories) error {
		var err error
		if src, err = r.ProductSources.GetForUpdate(ctx, id); err != nil {
			return err
		}
		if err := requireProductAndSeller(ctx, r, f.ProductID, f.SellerID); err != nil {
			return err
		}
		src.ProductID = f.ProductID
		src.SellerID = f.SellerID
		src.Quantity = f.Quantity
		src.UpdatedAt = s.now()
		return r.ProductSources.Update(ctx, src)
	})
	if err != nil {
		return nil, err
	}
	return src, nil
}

// DeleteProductSource borra un registro de stock.
func (s *Store) DeleteProductSource(ctx context.Context, id string) error {
	return s.tx.Run(ctx, func(r repository.Repositories) error {
		if _, err := r.ProductSources.GetForUpdate(ctx, id); err != nil {
			return err
		}
		return r.ProductSources.Delete(ctx, id)
	})
}

// ── Lecturas combinadas ──────────────────────────────────────────────────────

// Snapshot lee las cuatro colecciones en una sola vista consistente.
func (s *Store) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	err := s.tx.View(ctx, func(r repository.Repositories) error {
		var err error
		if snap.Categories, err = r.Categories.List(ctx); err != nil {
			return err
		}
		if snap.Products, err = r.Products.List(ctx); err != nil {
			return err
		}
		if snap.Sellers, err = r.Sellers.List(ctx); err != nil {
			return err
		}
		snap.ProductSources, err = r.ProductSources.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func checkPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
	}
	return nil
}

func checkQuantity(q int64) error {
	if q < 0 {
		return fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrValidation)
	}
	return nil
}

// asReferential convierte el ErrNotFound de una referencia en ErrReferential.
func asReferential(err error, kind, id string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %s %s no existe", domain.ErrReferential, kind, id)
	}
	return err
}

func requireCategory(ctx context.Context, r repository.Repositories, id string) error {
	_, err := r.Categories.GetForUpdate(ctx, id)
	return asReferential(err, "categoría", id)
}

func requireProductAndSeller(ctx context.Context, r repository.Repositories, productID, sellerID string) error {
	if _, err := r.Products.GetForUpdate(ctx, productID); err != nil {
		return asReferential(err, "producto", productID)
	}
	_, err := r.Sellers.GetForUpdate(ctx, sellerID)
	return asReferential(err, "vendedor", sellerID)
}

func deleteProductCascade(ctx context.Context, r repository.Repositories, productID string) error {
	sources, err := r.ProductSources.ListByProduct(ctx, productID)
	if err != nil {
		return err
	}
	for _, src := range sources {
		if err := r.ProductSources.Delete(ctx, src.ID); err != nil {
			return err
		}
	}
	return r.Products.Delete(ctx, productID)
}
