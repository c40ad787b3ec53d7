package sqlite

import (
	"context"

	"gorm.io/gorm"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción GORM.
type TxRunner struct {
	db *gorm.DB
}

// NewTxRunner construye el runner sobre una conexión abierta con Open.
func NewTxRunner(db *gorm.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run hace Commit si fn termina sin error y Rollback en caso contrario.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepositories(tx))
	})
}

// View usa también una transacción: con una sola conexión, ningún escritor se intercala
// entre las lecturas de fn.
func (r *TxRunner) View(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return r.Run(ctx, fn)
}

func newRepositories(tx *gorm.DB) repository.Repositories {
	return repository.Repositories{
		Categories:     &categoryRepo{db: tx},
		Products:       &productRepo{db: tx},
		Sellers:        &sellerRepo{db: tx},
		ProductSources: &productSourceRepo{db: tx},
	}
}
