// Package backend abre el almacenamiento del inventario elegido por STORE_DRIVER.
package backend

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-web/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-web/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-web/pkg/config"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// Open abre el backend, aplica el esquema y devuelve el TxRunner junto con la función de cierre.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (inventory.TxRunner, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al detener el proceso")
		st := memory.New()
		return st, st.Close, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrar PostgreSQL: %w", err)
		}
		log.Info().Str("driver", cfg.Store.Driver).Msg("almacenamiento listo")
		return postgres.NewTxRunner(pool), pool.Close, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.Store.SQLitePath, log.DebugEnabled())
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.Migrate(ctx, db); err != nil {
			_ = sqlite.Close(db)
			return nil, nil, fmt.Errorf("migrar SQLite: %w", err)
		}
		log.Info().Str("driver", cfg.Store.Driver).Str("path", cfg.Store.SQLitePath).Msg("almacenamiento listo")
		closeFn := func() {
			if err := sqlite.Close(db); err != nil {
				log.Error().Err(err).Msg("cerrar SQLite")
			}
		}
		return sqlite.NewTxRunner(db), closeFn, nil
	}
	return nil, nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Store.Driver)
}
