package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/domain/repository"
)

var _ repository.SellerRepository = (*SellerRepo)(nil)

// SellerRepo implementación del puerto SellerRepository sobre PostgreSQL.
type SellerRepo struct {
	q Querier
}

// NewSellerRepository construye el adaptador de persistencia para vendedores.
func NewSellerRepository(q Querier) *SellerRepo {
	return &SellerRepo{q: q}
}

// Create persiste un nuevo vendedor.
func (r *SellerRepo) Create(ctx context.Context, s *entity.Seller) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO sellers (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		s.ID, s.Name, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return mapError("insert seller", err)
	}
	return nil
}

// GetByID obtiene un vendedor por ID.
func (r *SellerRepo) GetByID(ctx context.Context, id string) (*entity.Seller, error) {
	return r.get(ctx, `SELECT id, name, created_at, updated_at FROM sellers WHERE id = $1`, id)
}

// GetForUpdate obtiene el vendedor y bloquea la fila.
func (r *SellerRepo) GetForUpdate(ctx context.Context, id string) (*entity.Seller, error) {
	return r.get(ctx, `SELECT id, name, created_at, updated_at FROM sellers WHERE id = $1 FOR UPDATE`, id)
}

func (r *SellerRepo) get(ctx context.Context, query, id string) (*entity.Seller, error) {
	if !validID(id) {
		return nil, notFound("seller", id)
	}
	var s entity.Seller
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("seller", id)
		}
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return &s, nil
}

// List lista todos los vendedores en orden de creación.
func (r *SellerRepo) List(ctx context.Context) ([]*entity.Seller, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at, updated_at FROM sellers ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()
	list := []*entity.Seller{}
	for rows.Next() {
		var s entity.Seller
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update reemplaza el nombre de un vendedor existente.
func (r *SellerRepo) Update(ctx context.Context, s *entity.Seller) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE sellers SET name = $2, updated_at = $3 WHERE id = $1`,
		s.ID, s.Name, s.UpdatedAt,
	)
	if err != nil {
		return mapError("update seller", err)
	}
	if cmd.RowsAffected() == 0 {
		return notFound("seller", s.ID)
	}
	return nil
}

// Delete elimina un vendedor por ID.
func (r *SellerRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return notFound("seller", id)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM sellers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete seller: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return notFound("seller", id)
	}
	return nil
}
