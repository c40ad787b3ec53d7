package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/domain/repository"
)

var _ repository.ProductSourceRepository = (*ProductSourceRepo)(nil)

const sourceColumns = `id, product_id, seller_id, quantity, created_at, updated_at`

// ProductSourceRepo stock por vendedor sobre PostgreSQL (usable con pool o tx).
type ProductSourceRepo struct {
	q Querier
}

// NewProductSourceRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewProductSourceRepository(q Querier) *ProductSourceRepo {
	return &ProductSourceRepo{q: q}
}

// Create persiste un registro de stock.
func (r *ProductSourceRepo) Create(ctx context.Context, s *entity.ProductSource) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO product_sources (id, product_id, seller_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.ProductID, s.SellerID, s.Quantity, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return mapError("insert product source", err)
	}
	return nil
}

// GetByID obtiene un registro de stock por ID.
func (r *ProductSourceRepo) GetByID(ctx context.Context, id string) (*entity.ProductSource, error) {
	return r.get(ctx, `SELECT `+sourceColumns+` FROM product_sources WHERE id = $1`, id)
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
func (r *ProductSourceRepo) GetForUpdate(ctx context.Context, id string) (*entity.ProductSource, error) {
	return r.get(ctx, `SELECT `+sourceColumns+` FROM product_sources WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductSourceRepo) get(ctx context.Context, query, id string) (*entity.ProductSource, error) {
	if !validID(id) {
		return nil, notFound("product_source", id)
	}
	var s entity.ProductSource
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ProductID, &s.SellerID, &s.Quantity, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("product_source", id)
		}
		return nil, fmt.Errorf("get product source: %w", err)
	}
	return &s, nil
}

// List lista todo el stock en orden de creación.
func (r *ProductSourceRepo) List(ctx context.Context) ([]*entity.ProductSource, error) {
	return r.list(ctx, `SELECT `+sourceColumns+` FROM product_sources ORDER BY created_at, id`)
}

// ListByProduct stock de un producto en todos los vendedores.
func (r *ProductSourceRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.ProductSource, error) {
	if !validID(productID) {
		return []*entity.ProductSource{}, nil
	}
	return r.list(ctx, `SELECT `+sourceColumns+` FROM product_sources WHERE product_id = $1 ORDER BY created_at, id`, productID)
}

// ListBySeller stock de un vendedor.
func (r *ProductSourceRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.ProductSource, error) {
	if !validID(sellerID) {
		return []*entity.ProductSource{}, nil
	}
	return r.list(ctx, `SELECT `+sourceColumns+` FROM product_sources WHERE seller_id = $1 ORDER BY created_at, id`, sellerID)
}

func (r *ProductSourceRepo) list(ctx context.Context, query string, args ...any) ([]*entity.ProductSource, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list product sources: %w", err)
	}
	defer rows.Close()
	list := []*entity.ProductSource{}
	for rows.Next() {
		var s entity.ProductSource
		if err := rows.Scan(&s.ID, &s.ProductID, &s.SellerID, &s.Quantity, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product source: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update reemplaza producto, vendedor y cantidad.
func (r *ProductSourceRepo) Update(ctx context.Context, s *entity.ProductSource) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE product_sources SET product_id = $2, seller_id = $3, quantity = $4, updated_at = $5
		WHERE id = $1`,
		s.ID, s.ProductID, s.SellerID, s.Quantity, s.UpdatedAt,
	)
	if err != nil {
		return mapError("update product source", err)
	}
	if cmd.RowsAffected() == 0 {
		return notFound("product_source", s.ID)
	}
	return nil
}

// Delete elimina un registro de stock por ID.
func (r *ProductSourceRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return notFound("product_source", id)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM product_sources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product source: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return notFound("product_source", id)
	}
	return nil
}
