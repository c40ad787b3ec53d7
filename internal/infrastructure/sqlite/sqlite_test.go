package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-web/internal/infrastructure/storetest"
)

func newRunner(t *testing.T) inventory.TxRunner {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "inventory.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	require.NoError(t, sqlite.Migrate(context.Background(), db))
	return sqlite.NewTxRunner(db)
}

func TestSQLiteStore_Conformidad(t *testing.T) {
	storetest.Run(t, newRunner)
}

func TestSQLiteStore_MigrateIdempotente(t *testing.T) {
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "inventory.db"), false)
	require.NoError(t, err)
	defer sqlite.Close(db)

	require.NoError(t, sqlite.Migrate(context.Background(), db))
	require.NoError(t, sqlite.Migrate(context.Background(), db))
}

func TestOpen_PathConParametros(t *testing.T) {
	path := "file:" + filepath.Join(t.TempDir(), "inv.db") + "?cache=shared"
	db, err := sqlite.Open(path, false)
	require.NoError(t, err)
	defer sqlite.Close(db)
	require.NoError(t, sqlite.Migrate(context.Background(), db))

	var timeout int
	require.NoError(t, db.Raw("PRAGMA busy_timeout").Scan(&timeout).Error)
	assert.Equal(t, 5000, timeout)

	s := inventory.NewStore(sqlite.NewTxRunner(db), inventory.DeleteOrphan)
	c, err := s.CreateCategory(context.Background(), "Bebidas")
	require.NoError(t, err)
	got, err := s.GetCategory(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", got.Name)
}

func TestOpen_PathSimpleAplicaBusyTimeout(t *testing.T) {
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "inventory.db"), false)
	require.NoError(t, err)
	defer sqlite.Close(db)

	var timeout int
	require.NoError(t, db.Raw("PRAGMA busy_timeout").Scan(&timeout).Error)
	assert.Equal(t, 5000, timeout)
}
