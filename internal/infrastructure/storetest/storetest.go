// Package storetest reúne las pruebas de conformidad que todo backend de inventory.TxRunner
// debe pasar. Cada backend la invoca desde su propio _test.go.
package storetest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/domain/repository"
)

// Factory entrega un backend vacío para cada subtest.
type Factory func(t *testing.T) inventory.TxRunner

// Run ejecuta la batería completa contra el backend que produce newRunner.
func Run(t *testing.T, newRunner Factory) {
	t.Helper()
	ctx := context.Background()

	t.Run("CrearYObtenerCategoria", func(t *testing.T) {
		s := inventory.NewStore(newRunner(t), inventory.DeleteOrphan)
		c, err := s.CreateCategory(ctx, "Herramientas")
		require.NoError(t, err)

		got, err := s.GetCategory(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Herramientas", got.Name)
		assert.Equal(t, c.ID, got.ID)
	})

	t.Run("GetInexistenteEsNotFound", func(t *testing.T) {
		s := inventory.NewStore(newRunner(t), inventory.DeleteOrphan)
		_, err := s.GetSeller(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = s.GetProductSource(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ListadoEstableYEnOrdenDeCreacion", func(t *testing.T) {
		s := inventory.NewStore(newRunner(t), inventory.DeleteOrphan)
		var ids []string
		for _, name := range []string{"uno", "dos", "tres"} {
			sl, err := s.CreateSeller(ctx, name)
			require.NoError(t, err)
			ids = append(ids, sl.ID)
		}
		first, err := s.ListSellers(ctx)
		require.NoError(t, err)
		second, err := s.ListSellers(ctx)
		require.NoError(t, err)
		require.Len(t, first, 3)
		assert.Equal(t, sellerIDs(first), sellerIDs(second))
		assert.Equal(t, ids, sellerIDs(first))
	})

	t.Run("ProductoConCategoriaInexistente", func(t *testing.T) {
		s := inventory.NewStore(newRunner(t), inventory.DeleteOrphan)
		_, err := s.CreateProduct(ctx, inventory.ProductFields{
			Name: "Taladro", Price: decimal.NewFromInt(10), CategoryID: uuid.New().String(),
		})
		assert.ErrorIs(t, err, domain.ErrReferential)

		list, err := s.ListProducts(ctx)
		require.NoError(t, err)
		assert.Empty(t, list, "no debe persistirse ninguna fila")
	})

	t.Run("PrecioDecimalSeConserva", func(t *testing.T) {
		s := inventory.NewStore(newRunner(t), inventory.DeleteOrphan)
		c, err := s.CreateCategory(ctx, "Ferretería")
		require.NoError(t, err)
		p, err := s.CreateProduct(ctx, inventory.ProductFields{
			Name: "Tornillo", Price: decimal.RequireFromString("0.15"), CategoryID: c.ID,
		})
		require.NoError(t, err)

		got, err := s.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("0.15")), "price = %s", got.Price)
		assert.Equal(t, c.ID, got.CategoryID)
	})

	t.Run("EditarYBorrarStock", func(t *testing.T) {
		s := inventory.NewStore(newRunner(t), inventory.DeleteOrphan)
		c, err := s.CreateCategory(ctx, "Ferretería")
		require.NoError(t, err)
		p, err := s.CreateProduct(ctx, inventory.ProductFields{Name: "Martillo", Price: decimal.NewFromInt(20), CategoryID: c.ID})
		require.NoError(t, err)
		sl, err := s.CreateSeller(ctx, "Central")
		require.NoError(t, err)
		src, err := s.CreateProductSource(ctx, inventory.ProductSourceFields{ProductID: p.ID, SellerID: sl.ID, Quantity: 3})
		require.NoError(t, err)

		_, err = s.UpdateProductSource(ctx, src.ID, inventory.ProductSourceFields{ProductID: p.ID, SellerID: sl.ID, Quantity: 9})
		require.NoError(t, err)
		got, err := s.GetProductSource(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(9), got.Quantity)

		bySeller, err := s.ListProductSources(ctx)
		require.NoError(t, err)
		assert.Len(t, bySeller, 1)

		require.NoError(t, s.DeleteProductSource(ctx, src.ID))
		_, err = s.GetProductSource(ctx, src.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, s.DeleteProductSource(ctx, src.ID), domain.ErrNotFound)
	})

	t.Run("RollbackSiFnFalla", func(t *testing.T) {
		runner := newRunner(t)
		boom := errors.New("boom")
		err := runner.Run(ctx, func(r repository.Repositories) error {
			c := &entity.Category{ID: uuid.New().String(), Name: "temporal"}
			if err := r.Categories.Create(ctx, c); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		s := inventory.NewStore(runner, inventory.DeleteOrphan)
		list, err := s.ListCategories(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("BusquedasPorReferencia", func(t *testing.T) {
		runner := newRunner(t)
		s := inventory.NewStore(runner, inventory.DeleteOrphan)
		a, _ := s.CreateCategory(ctx, "A")
		b, _ := s.CreateCategory(ctx, "B")
		p1, err := s.CreateProduct(ctx, inventory.ProductFields{Name: "p1", Price: decimal.NewFromInt(1), CategoryID: a.ID})
		require.NoError(t, err)
		_, err = s.CreateProduct(ctx, inventory.ProductFields{Name: "p2", Price: decimal.NewFromInt(1), CategoryID: b.ID})
		require.NoError(t, err)
		sl, _ := s.CreateSeller(ctx, "S")
		_, err = s.CreateProductSource(ctx, inventory.ProductSourceFields{ProductID: p1.ID, SellerID: sl.ID, Quantity: 1})
		require.NoError(t, err)

		err = runner.View(ctx, func(r repository.Repositories) error {
			inA, err := r.Products.ListByCategory(ctx, a.ID)
			require.NoError(t, err)
			require.Len(t, inA, 1)
			assert.Equal(t, p1.ID, inA[0].ID)

			byProduct, err := r.ProductSources.ListByProduct(ctx, p1.ID)
			require.NoError(t, err)
			assert.Len(t, byProduct, 1)

			bySeller, err := r.ProductSources.ListBySeller(ctx, sl.ID)
			require.NoError(t, err)
			assert.Len(t, bySeller, 1)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("EdicionesConcurrentesDeStock", func(t *testing.T) {
		s := inventory.NewStore(newRunner(t), inventory.DeleteOrphan)
		c, err := s.CreateCategory(ctx, "C")
		require.NoError(t, err)
		p, err := s.CreateProduct(ctx, inventory.ProductFields{Name: "P", Price: decimal.NewFromInt(1), CategoryID: c.ID})
		require.NoError(t, err)
		sl, err := s.CreateSeller(ctx, "S")
		require.NoError(t, err)
		src, err := s.CreateProductSource(ctx, inventory.ProductSourceFields{ProductID: p.ID, SellerID: sl.ID, Quantity: 1})
		require.NoError(t, err)

		for i := 0; i < 20; i++ {
			a, b := int64(100+i), int64(200+i)
			var wg sync.WaitGroup
			for _, q := range []int64{a, b} {
				wg.Add(1)
				go func(q int64) {
					defer wg.Done()
					_, err := s.UpdateProductSource(ctx, src.ID, inventory.ProductSourceFields{
						ProductID: p.ID, SellerID: sl.ID, Quantity: q,
					})
					assert.NoError(t, err)
				}(q)
			}
			wg.Wait()

			got, err := s.GetProductSource(ctx, src.ID)
			require.NoError(t, err)
			assert.Contains(t, []int64{a, b}, got.Quantity)
		}
	})
}

func sellerIDs(list []*entity.Seller) []string {
	ids := make([]string, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.ID)
	}
	return ids
}
