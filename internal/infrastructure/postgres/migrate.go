package postgres

import (
	"context"
	"fmt"
)

// schema tablas del inventario. product.category_id y las referencias de product_sources no
// llevan FOREIGN KEY: la integridad la valida inventory.Store y el borrado sigue la
// DeletePolicy configurada (por defecto los dependientes quedan huérfanos).
var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id         UUID PRIMARY KEY,
		name       VARCHAR(100) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          UUID PRIMARY KEY,
		name        VARCHAR(100) NOT NULL,
		price       NUMERIC NOT NULL CHECK (price >= 0),
		category_id UUID NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category_id)`,
	`CREATE TABLE IF NOT EXISTS sellers (
		id         UUID PRIMARY KEY,
		name       VARCHAR(100) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS product_sources (
		id         UUID PRIMARY KEY,
		product_id UUID NOT NULL,
		seller_id  UUID NOT NULL,
		quantity   BIGINT NOT NULL CHECK (quantity >= 0),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_product_sources_product ON product_sources (product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_product_sources_seller ON product_sources (seller_id)`,
}

// Migrate crea las tablas si no existen. Es idempotente.
func Migrate(ctx context.Context, q Querier) error {
	for i, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate paso %d: %w", i+1, err)
		}
	}
	return nil
}
