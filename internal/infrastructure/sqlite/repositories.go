package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/domain/repository"
)

var (
	_ repository.CategoryRepository      = (*categoryRepo)(nil)
	_ repository.ProductRepository       = (*productRepo)(nil)
	_ repository.SellerRepository        = (*sellerRepo)(nil)
	_ repository.ProductSourceRepository = (*productSourceRepo)(nil)
)

const orderByCreation = "created_at, id"

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrNotFound, kind, id)
}

// take busca una fila por id y traduce gorm.ErrRecordNotFound.
func take[M any](ctx context.Context, db *gorm.DB, kind, id string) (*M, error) {
	var m M
	err := db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(kind, id)
		}
		return nil, fmt.Errorf("get %s: %w", kind, err)
	}
	return &m, nil
}

// updates reemplaza columnas de la fila id; sin filas afectadas devuelve domain.ErrNotFound.
func updates[M any](ctx context.Context, db *gorm.DB, kind, id string, values map[string]any) error {
	res := db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("update %s: %w", kind, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(kind, id)
	}
	return nil
}

func remove[M any](ctx context.Context, db *gorm.DB, kind, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if res.Error != nil {
		return fmt.Errorf("delete %s: %w", kind, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(kind, id)
	}
	return nil
}

func insert[M any](ctx context.Context, db *gorm.DB, kind string, m *M) error {
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s duplicado", domain.ErrConflict, kind)
		}
		return fmt.Errorf("insert %s: %w", kind, err)
	}
	return nil
}

// ── Category ─────────────────────────────────────────────────────────────────

type categoryRepo struct{ db *gorm.DB }

func (r *categoryRepo) Create(ctx context.Context, c *entity.Category) error {
	return insert(ctx, r.db, "category", &categoryModel{
		ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	})
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	m, err := take[categoryModel](ctx, r.db, "category", id)
	if err != nil {
		return nil, err
	}
	return m.toEntity(), nil
}

// GetForUpdate: SQLite bloquea la base completa al escribir; no hay bloqueo por fila.
func (r *categoryRepo) GetForUpdate(ctx context.Context, id string) (*entity.Category, error) {
	return r.GetByID(ctx, id)
}

func (r *categoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var rows []categoryModel
	if err := r.db.WithContext(ctx).Order(orderByCreation).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	list := make([]*entity.Category, 0, len(rows))
	for _, m := range rows {
		list = append(list, m.toEntity())
	}
	return list, nil
}

func (r *categoryRepo) Update(ctx context.Context, c *entity.Category) error {
	return updates[categoryModel](ctx, r.db, "category", c.ID, map[string]any{
		"name": c.Name, "updated_at": c.UpdatedAt,
	})
}

func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	return remove[categoryModel](ctx, r.db, "category", id)
}

// ── Product ──────────────────────────────────────────────────────────────────

type productRepo struct{ db *gorm.DB }

func (r *productRepo) Create(ctx context.Context, p *entity.Product) error {
	return insert(ctx, r.db, "product", &productModel{
		ID: p.ID, Name: p.Name, Price: p.Price, CategoryID: p.CategoryID,
		CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	})
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	m, err := take[productModel](ctx, r.db, "product", id)
	if err != nil {
		return nil, err
	}
	return m.toEntity(), nil
}

func (r *productRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *productRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *productRepo) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	return r.find(r.db.WithContext(ctx).Where("category_id = ?", categoryID))
}

func (r *productRepo) find(q *gorm.DB) ([]*entity.Product, error) {
	var rows []productModel
	if err := q.Order(orderByCreation).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list := make([]*entity.Product, 0, len(rows))
	for _, m := range rows {
		list = append(list, m.toEntity())
	}
	return list, nil
}

func (r *productRepo) Update(ctx context.Context, p *entity.Product) error {
	return updates[productModel](ctx, r.db, "product", p.ID, map[string]any{
		"name": p.Name, "price": p.Price, "category_id": p.CategoryID, "updated_at": p.UpdatedAt,
	})
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	return remove[productModel](ctx, r.db, "product", id)
}

// ── Seller ───────────────────────────────────────────────────────────────────

type sellerRepo struct{ db *gorm.DB }

func (r *sellerRepo) Create(ctx context.Context, s *entity.Seller) error {
	return insert(ctx, r.db, "seller", &sellerModel{
		ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	})
}

func (r *sellerRepo) GetByID(ctx context.Context, id string) (*entity.Seller, error) {
	m, err := take[sellerModel](ctx, r.db, "seller", id)
	if err != nil {
		return nil, err
	}
	return m.toEntity(), nil
}

func (r *sellerRepo) GetForUpdate(ctx context.Context, id string) (*entity.Seller, error) {
	return r.GetByID(ctx, id)
}

func (r *sellerRepo) List(ctx context.Context) ([]*entity.Seller, error) {
	var rows []sellerModel
	if err := r.db.WithContext(ctx).Order(orderByCreation).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	list := make([]*entity.Seller, 0, len(rows))
	for _, m := range rows {
		list = append(list, m.toEntity())
	}
	return list, nil
}

func (r *sellerRepo) Update(ctx context.Context, s *entity.Seller) error {
	return updates[sellerModel](ctx, r.db, "seller", s.ID, map[string]any{
		"name": s.Name, "updated_at": s.UpdatedAt,
	})
}

func (r *sellerRepo) Delete(ctx context.Context, id string) error {
	return remove[sellerModel](ctx, r.db, "seller", id)
}

// ── ProductSource ────────────────────────────────────────────────────────────

type productSourceRepo struct{ db *gorm.DB }

func (r *productSourceRepo) Create(ctx context.Context, s *entity.ProductSource) error {
	return insert(ctx, r.db, "product_source", &productSourceModel{
		ID: s.ID, ProductID: s.ProductID, SellerID: s.SellerID, Quantity: s.Quantity,
		CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	})
}

func (r *productSourceRepo) GetByID(ctx context.Context, id string) (*entity.ProductSource, error) {
	m, err := take[productSourceModel](ctx, r.db, "product_source", id)
	if err != nil {
		return nil, err
	}
	return m.toEntity(), nil
}

func (r *productSourceRepo) GetForUpdate(ctx context.Context, id string) (*entity.ProductSource, error) {
	return r.GetByID(ctx, id)
}

func (r *productSourceRepo) List(ctx context.Context) ([]*entity.ProductSource, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *productSourceRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.ProductSource, error) {
	return r.find(r.db.WithContext(ctx).Where("product_id = ?", productID))
}

func (r *productSourceRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.ProductSource, error) {
	return r.find(r.db.WithContext(ctx).Where("seller_id = ?", sellerID))
}

func (r *productSourceRepo) find(q *gorm.DB) ([]*entity.ProductSource, error) {
	var rows []productSourceModel
	if err := q.Order(orderByCreation).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list product sources: %w", err)
	}
	list := make([]*entity.ProductSource, 0, len(rows))
	for _, m := range rows {
		list = append(list, m.toEntity())
	}
	return list, nil
}

func (r *productSourceRepo) Update(ctx context.Context, s *entity.ProductSource) error {
	return updates[productSourceModel](ctx, r.db, "product_source", s.ID, map[string]any{
		"product_id": s.ProductID, "seller_id": s.SellerID, "quantity": s.Quantity, "updated_at": s.UpdatedAt,
	})
}

func (r *productSourceRepo) Delete(ctx context.Context, id string) error {
	return remove[productSourceModel](ctx, r.db, "product_source", id)
}
