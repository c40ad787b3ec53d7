// Package analytics contiene los casos de uso de reportes: activos por categoría,
// stock por vendedor, el gráfico de activos y el reporte PDF.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	appinv "github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/domain/inventory"
)

const (
	AssetsChartTitle = "Current Assets by Category"
	reportTitle      = "Reporte de inventario"
)

// AssetsUseCase lee el inventario en una sola vista consistente y produce los agregados.
// Los colaboradores de presentación (chart, pdf) son opcionales: sin ellos solo se
// exponen los datos.
type AssetsUseCase struct {
	store  *appinv.Store
	chart  ChartRenderer
	report ReportGenerator
	now    func() time.Time
}

// NewAssetsUseCase construye el caso de uso.
func NewAssetsUseCase(store *appinv.Store, chart ChartRenderer, report ReportGenerator) *AssetsUseCase {
	return &AssetsUseCase{
		store:  store,
		chart:  chart,
		report: report,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// TotalValueByCategory suma el precio de los productos de cada categoría.
func (uc *AssetsUseCase) TotalValueByCategory(ctx context.Context) (*dto.AssetsReportDTO, error) {
	snap, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("leer inventario: %w", err)
	}
	return assetsReport(snap)
}

// StockBySeller unidades y valor del stock de cada vendedor.
func (uc *AssetsUseCase) StockBySeller(ctx context.Context) ([]dto.SellerStockDTO, error) {
	snap, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("leer inventario: %w", err)
	}
	return sellerStock(snap)
}

// AssetsChart dibuja los totales por nombre de categoría. Categorías homónimas comparten barra,
// en el orden de su primera aparición.
func (uc *AssetsUseCase) AssetsChart(ctx context.Context) ([]byte, error) {
	if uc.chart == nil {
		return nil, fmt.Errorf("gráfico no configurado")
	}
	report, err := uc.TotalValueByCategory(ctx)
	if err != nil {
		return nil, err
	}
	png, err := uc.chart.BarChart(AssetsChartTitle, "Category", "Total Value", ChartBars(report))
	if err != nil {
		return nil, fmt.Errorf("dibujar gráfico: %w", err)
	}
	return png, nil
}

// InventoryReport genera el PDF con los totales por categoría y el stock por vendedor.
// Devuelve el contenido y el nombre de archivo sugerido.
func (uc *AssetsUseCase) InventoryReport(ctx context.Context) ([]byte, string, error) {
	if uc.report == nil {
		return nil, "", fmt.Errorf("reporte PDF no configurado")
	}
	snap, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("leer inventario: %w", err)
	}
	assets, err := assetsReport(snap)
	if err != nil {
		return nil, "", err
	}
	sellers, err := sellerStock(snap)
	if err != nil {
		return nil, "", err
	}
	now := uc.now()
	data := &dto.InventoryReportDTO{
		Title:       reportTitle,
		GeneratedAt: now,
		Assets:      *assets,
		Sellers:     sellers,
	}
	pdf, err := uc.report.InventoryReport(data)
	if err != nil {
		return nil, "", fmt.Errorf("generar pdf: %w", err)
	}
	return pdf, fmt.Sprintf("inventario-%s.pdf", now.Format("20060102")), nil
}

// ChartBars convierte el reporte en barras agrupadas por nombre.
func ChartBars(report *dto.AssetsReportDTO) []Bar {
	bars := make([]Bar, 0, len(report.ByName))
	seen := make(map[string]bool, len(report.ByName))
	for _, it := range report.Items {
		if seen[it.Name] {
			continue
		}
		seen[it.Name] = true
		bars = append(bars, Bar{Label: it.Name, Value: report.ByName[it.Name].InexactFloat64()})
	}
	return bars
}

func assetsReport(snap *appinv.Snapshot) (*dto.AssetsReportDTO, error) {
	totals, err := inventory.TotalValueByCategory(snap.Categories, snap.Products)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryTotalDTO, len(totals))
	for i, t := range totals {
		items[i] = dto.CategoryTotalDTO{CategoryID: t.CategoryID, Name: t.Name, Total: t.Total}
	}
	return &dto.AssetsReportDTO{
		Items:      items,
		ByName:     totals.ByName(),
		GrandTotal: totals.Sum(),
	}, nil
}

func sellerStock(snap *appinv.Snapshot) ([]dto.SellerStockDTO, error) {
	stock, err := inventory.StockBySeller(snap.Sellers, snap.Products, snap.ProductSources)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SellerStockDTO, len(stock))
	for i, s := range stock {
		out[i] = dto.SellerStockDTO{SellerID: s.SellerID, Name: s.Name, Units: s.Units, Value: s.Value}
	}
	return out, nil
}
