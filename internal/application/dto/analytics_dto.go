package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotalDTO valor total de los productos de una categoría.
type CategoryTotalDTO struct {
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	Total      decimal.Decimal `json:"total"`
}

// AssetsReportDTO activos actuales por categoría (datos del gráfico).
type AssetsReportDTO struct {
	Items      []CategoryTotalDTO         `json:"items"`
	ByName     map[string]decimal.Decimal `json:"by_name"`
	GrandTotal decimal.Decimal            `json:"grand_total"`
}

// SellerStockDTO unidades y valor del stock de un vendedor.
type SellerStockDTO struct {
	SellerID string          `json:"seller_id"`
	Name     string          `json:"name"`
	Units    int64           `json:"units"`
	Value    decimal.Decimal `json:"value"`
}

// InventoryReportDTO datos del reporte PDF de inventario.
type InventoryReportDTO struct {
	Title       string           `json:"title"`
	GeneratedAt time.Time        `json:"generated_at"`
	Assets      AssetsReportDTO  `json:"assets"`
	Sellers     []SellerStockDTO `json:"sellers"`
}
