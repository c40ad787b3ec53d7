// Package inventory contiene los cálculos de dominio sobre el inventario (sin acceso a datos).
package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// CategoryTotal valor acumulado de los productos de una categoría.
type CategoryTotal struct {
	CategoryID string
	Name       string
	Total      decimal.Decimal
}

// Totals resultado de TotalValueByCategory, en el mismo orden que las categorías recibidas.
type Totals []CategoryTotal

// ByName pliega los totales en un mapa nombre → valor. Categorías homónimas se suman.
func (t Totals) ByName() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(t))
	for _, ct := range t {
		out[ct.Name] = out[ct.Name].Add(ct.Total)
	}
	return out
}

// Sum total general de todas las categorías.
func (t Totals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, ct := range t {
		sum = sum.Add(ct.Total)
	}
	return sum
}

// TotalValueByCategory suma Price de cada producto en la categoría indicada por su CategoryID.
// Toda categoría aparece en el resultado (en cero si no tiene productos).
// Un producto cuya categoría no existe es un error de integridad: devuelve domain.ErrReferential.
func TotalValueByCategory(categories []*entity.Category, products []*entity.Product) (Totals, error) {
	totals := make(Totals, len(categories))
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		totals[i] = CategoryTotal{CategoryID: c.ID, Name: c.Name, Total: decimal.Zero}
		index[c.ID] = i
	}
	for _, p := range products {
		i, ok := index[p.CategoryID]
		if !ok {
			return nil, fmt.Errorf("%w: el producto %s apunta a la categoría %s", domain.ErrReferential, p.ID, p.CategoryID)
		}
		totals[i].Total = totals[i].Total.Add(p.Price)
	}
	return totals, nil
}

// SellerStock unidades y valor (cantidad × precio) que mantiene un vendedor.
type SellerStock struct {
	SellerID string
	Name     string
	Units    int64
	Value    decimal.Decimal
}

// StockBySeller agrega los ProductSource por vendedor. Referencias colgantes a producto o
// vendedor devuelven domain.ErrReferential.
func StockBySeller(sellers []*entity.Seller, products []*entity.Product, sources []*entity.ProductSource) ([]SellerStock, error) {
	out := make([]SellerStock, len(sellers))
	index := make(map[string]int, len(sellers))
	for i, s := range sellers {
		out[i] = SellerStock{SellerID: s.ID, Name: s.Name, Value: decimal.Zero}
		index[s.ID] = i
	}
	prices := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}
	for _, src := range sources {
		i, ok := index[src.SellerID]
		if !ok {
			return nil, fmt.Errorf("%w: el stock %s apunta al vendedor %s", domain.ErrReferential, src.ID, src.SellerID)
		}
		price, ok := prices[src.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: el stock %s apunta al producto %s", domain.ErrReferential, src.ID, src.ProductID)
		}
		out[i].Units += src.Quantity
		out[i].Value = out[i].Value.Add(price.Mul(decimal.NewFromInt(src.Quantity)))
	}
	return out, nil
}
