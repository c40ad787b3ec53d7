package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-web/internal/application/analytics"
	"github.com/jhoicas/inventario-web/internal/application/dto"
	appinv "github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/infrastructure/memory"
)

type fakeChart struct {
	title string
	bars  []analytics.Bar
}

func (f *fakeChart) BarChart(title, _, _ string, bars []analytics.Bar) ([]byte, error) {
	f.title = title
	f.bars = bars
	return []byte("png"), nil
}

type fakeReport struct{ data *dto.InventoryReportDTO }

func (f *fakeReport) InventoryReport(data *dto.InventoryReportDTO) ([]byte, error) {
	f.data = data
	return []byte("%PDF"), nil
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seed(t *testing.T, store *appinv.Store) (a, b, c string) {
	t.Helper()
	ctx := context.Background()
	catA, err := store.CreateCategory(ctx, "A")
	require.NoError(t, err)
	catB, err := store.CreateCategory(ctx, "B")
	require.NoError(t, err)
	catC, err := store.CreateCategory(ctx, "C")
	require.NoError(t, err)
	for _, p := range []appinv.ProductFields{
		{Name: "p1", Price: price("10.00"), CategoryID: catA.ID},
		{Name: "p2", Price: price("5.00"), CategoryID: catA.ID},
		{Name: "p3", Price: price("7.50"), CategoryID: catB.ID},
	} {
		_, err := store.CreateProduct(ctx, p)
		require.NoError(t, err)
	}
	return catA.ID, catB.ID, catC.ID
}

func TestTotalValueByCategory_EjemploBasico(t *testing.T) {
	store := appinv.NewStore(memory.New(), appinv.DeleteOrphan)
	seed(t, store)
	uc := analytics.NewAssetsUseCase(store, nil, nil)

	report, err := uc.TotalValueByCategory(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Items, 3)
	assert.True(t, report.ByName["A"].Equal(price("15")))
	assert.True(t, report.ByName["B"].Equal(price("7.5")))
	assert.True(t, report.ByName["C"].IsZero())
	assert.True(t, report.GrandTotal.Equal(price("22.5")))
}

func TestTotalValueByCategory_InventarioVacio(t *testing.T) {
	uc := analytics.NewAssetsUseCase(appinv.NewStore(memory.New(), ""), nil, nil)

	report, err := uc.TotalValueByCategory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.Items)
	assert.Empty(t, report.ByName)
}

func TestTotalValueByCategory_ReferenciaColganteFalla(t *testing.T) {
	ctx := context.Background()
	store := appinv.NewStore(memory.New(), appinv.DeleteOrphan)
	a, _, _ := seed(t, store)
	require.NoError(t, store.DeleteCategory(ctx, a))

	_, err := analytics.NewAssetsUseCase(store, nil, nil).TotalValueByCategory(ctx)
	assert.True(t, errors.Is(err, domain.ErrReferential))
}

func TestStockBySeller(t *testing.T) {
	ctx := context.Background()
	store := appinv.NewStore(memory.New(), appinv.DeleteOrphan)
	a, _, _ := seed(t, store)
	p, err := store.CreateProduct(ctx, appinv.ProductFields{Name: "p4", Price: price("2.25"), CategoryID: a})
	require.NoError(t, err)
	s1, err := store.CreateSeller(ctx, "S1")
	require.NoError(t, err)
	_, err = store.CreateSeller(ctx, "S2")
	require.NoError(t, err)
	_, err = store.CreateProductSource(ctx, appinv.ProductSourceFields{ProductID: p.ID, SellerID: s1.ID, Quantity: 4})
	require.NoError(t, err)

	stock, err := analytics.NewAssetsUseCase(store, nil, nil).StockBySeller(ctx)
	require.NoError(t, err)
	require.Len(t, stock, 2)
	assert.Equal(t, int64(4), stock[0].Units)
	assert.True(t, stock[0].Value.Equal(price("9")))
	assert.Equal(t, int64(0), stock[1].Units)
}

func TestAssetsChart_AgrupaPorNombre(t *testing.T) {
	ctx := context.Background()
	store := appinv.NewStore(memory.New(), appinv.DeleteOrphan)
	seed(t, store)
	dup, err := store.CreateCategory(ctx, "A")
	require.NoError(t, err)
	_, err = store.CreateProduct(ctx, appinv.ProductFields{Name: "p5", Price: price("1"), CategoryID: dup.ID})
	require.NoError(t, err)

	chart := &fakeChart{}
	png, err := analytics.NewAssetsUseCase(store, chart, nil).AssetsChart(ctx)
	require.NoError(t, err)

	assert.Equal(t, []byte("png"), png)
	assert.Equal(t, analytics.AssetsChartTitle, chart.title)
	assert.Equal(t, []analytics.Bar{
		{Label: "A", Value: 16},
		{Label: "B", Value: 7.5},
		{Label: "C", Value: 0},
	}, chart.bars)
}

func TestAssetsChart_SinRenderer(t *testing.T) {
	_, err := analytics.NewAssetsUseCase(appinv.NewStore(memory.New(), ""), nil, nil).AssetsChart(context.Background())
	assert.Error(t, err)
}

func TestInventoryReport(t *testing.T) {
	store := appinv.NewStore(memory.New(), appinv.DeleteOrphan)
	seed(t, store)
	gen := &fakeReport{}

	pdf, name, err := analytics.NewAssetsUseCase(store, nil, gen).InventoryReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF"), pdf)
	assert.Regexp(t, `^inventario-\d{8}\.pdf$`, name)
	require.NotNil(t, gen.data)
	assert.Len(t, gen.data.Assets.Items, 3)
	assert.WithinDuration(t, time.Now(), gen.data.GeneratedAt, time.Minute)
}
