package memory

import (
	"context"
	"fmt"

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

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrNotFound, kind, id)
}

func duplicate(kind, id string) error {
	return fmt.Errorf("%w: %s %s ya existe", domain.ErrConflict, kind, id)
}

// ── Category ─────────────────────────────────────────────────────────────────

type categoryRepo struct {
	t        *table[entity.Category]
	readOnly bool
}

func (r *categoryRepo) Create(_ context.Context, c *entity.Category) error {
	if r.readOnly {
		return errReadOnly
	}
	if !r.t.insert(c.ID, *c) {
		return duplicate("category", c.ID)
	}
	return nil
}

func (r *categoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.t.get(id)
	if !ok {
		return nil, notFound("category", id)
	}
	return &c, nil
}

// GetForUpdate equivale a GetByID: Run ya tiene acceso exclusivo.
func (r *categoryRepo) GetForUpdate(ctx context.Context, id string) (*entity.Category, error) {
	return r.GetByID(ctx, id)
}

func (r *categoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	return r.t.filter(nil), nil
}

func (r *categoryRepo) Update(_ context.Context, c *entity.Category) error {
	if r.readOnly {
		return errReadOnly
	}
	if !r.t.replace(c.ID, *c) {
		return notFound("category", c.ID)
	}
	return nil
}

func (r *categoryRepo) Delete(_ context.Context, id string) error {
	if r.readOnly {
		return errReadOnly
	}
	if !r.t.remove(id) {
		return notFound("category", id)
	}
	return nil
}

// ── Product ──────────────────────────────────────────────────────────────────

type productRepo struct {
	t        *table[entity.Product]
	readOnly bool
}

func (r *productRepo) Create(_ context.Context, p *entity.Product) error {
	if r.readOnly {
		return errReadOnly
	}
	if !r.t.insert(p.ID, *p) {
		return duplicate("product", p.ID)
	}
	return nil
}

func (r *productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.t.get(id)
	if !ok {
		return nil, notFound("product", id)
	}
	return &p, nil
}

func (r *productRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *productRepo) List(_ context.Context) ([]*entity.Product, error) {
	return r.t.filter(nil), nil
}

func (r *productRepo) ListByCategory(_ context.Context, categoryID string) ([]*entity.Product, error) {
	return r.t.filter(func(p entity.Product) bool { return p.CategoryID == categoryID }), nil
}

func (r *productRepo) Update(_ context.Context, p *entity.Product) error {
	if r.readOnly {
		return errReadOnly
	}
	if !r.t.replace(p.ID, *p) {
		return notFound("product", p.ID)
	}
	return nil
}

func (r *productRepo) Delete(_ context.Context, id string) error {
	if r.readOnly {
		return errReadOnly
	}
	if !r.t.remove(id) {
		return notFound("product", id)
	}
	return nil
}

// ── Seller ───────────────────────────────────────────────────────────────────

type sellerRepo struct {
	t        *table[entity.Seller]
	readOnly bool
}

func (r *sellerRepo) Create(_ context.Context, s *entity.Seller) error {
	if r.readOnly {
		return errReadOnly
	}
	if !r.t.insert(s.ID, *s) {
		return duplicate("seller", s.ID)
	}
	return nil
}

func (r *sellerRepo) GetByID(_ context.Context, id string) (*entity.Seller, error) {
	s, ok := r.t.get(id)
	if !ok {
		return nil, notFound("seller", id)
	}
	return &s, nil
}

func (r *sellerRepo) GetForUpdate(ctx context.Context, id string) (*entity.Seller, error) {
	return r.GetByID(ctx, id)
}

func (r *sellerRepo) List(_ context.Context) ([]*entity.Seller, error) {
	return r.t.filter(nil), nil
}

func (r *sellerRepo) Update(_ context.Context, s *entity.Seller) error {
	if r.readOnly {
		return errReadOnly
	}
	if !r.t.replace(s.ID, *s) {
		return notFound("seller", s.ID)
	}
	return nil
}

func (r *sellerRepo) Delete(_ context.Context, id string) error {
	if r.readOnly {
		return errReadOnly
	}
	if !r.t.remove(id) {
		return notFound("seller", id)
	}
	return nil
}

// ── ProductSource ────────────────────────────────────────────────────────────

type productSourceRepo struct {
	t        *table[entity.ProductSource]
	readOnly bool
}

func (r *productSourceRepo) Create(_ context.Context, src *entity.ProductSource) error {
	if r.readOnly {
		return errReadOnly
	}
	if !r.t.insert(src.ID, *src) {
		return duplicate("product_source", src.ID)
	}
	return nil
}

func (r *productSourceRepo) GetByID(_ context.Context, id string) (*entity.ProductSource, error) {
	src, ok := r.t.get(id)
	if !ok {
		return nil, notFound("product_source", id)
	}
	return &src, nil
}

func (r *productSourceRepo) GetForUpdate(ctx context.Context, id string) (*entity.ProductSource, error) {
	return r.GetByID(ctx, id)
}

func (r *productSourceRepo) List(_ context.Context) ([]*entity.ProductSource, error) {
	return r.t.filter(nil), nil
}

func (r *productSourceRepo) ListByProduct(_ context.Context, productID string) ([]*entity.ProductSource, error) {
	return r.t.filter(func(src entity.ProductSource) bool { return src.ProductID == productID }), nil
}

func (r *productSourceRepo) ListBySeller(_ context.Context, sellerID string) ([]*entity.ProductSource, error) {
	return r.t.filter(func(src entity.ProductSource) bool { return src.SellerID == sellerID }), nil
}

func (r *productSourceRepo) Update(_ context.Context, src *entity.ProductSource) error {
	if r.readOnly {
		return errReadOnly
	}
	if !r.t.replace(src.ID, *src) {
		return notFound("product_source", src.ID)
	}
	return nil
}

func (r *productSourceRepo) Delete(_ context.Context, id string) error {
	if r.readOnly {
		return errReadOnly
	}
	if !r.t.remove(id) {
		return notFound("product_source", id)
	}
	return nil
}
