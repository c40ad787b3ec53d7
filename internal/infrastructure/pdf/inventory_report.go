// Package pdf genera el reporte de inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                │  Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ACTIVOS: Categoría | Valor total                           │
//	│  TOTAL GENERAL                                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STOCK: Vendedor | Unidades | Valor                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-web/internal/application/analytics"
	"github.com/jhoicas/inventario-web/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ analytics.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador; author va en los metadatos del PDF.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

// InventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) InventoryReport(data *dto.InventoryReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(data.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("ACTIVOS POR CATEGORÍA"))
	m.AddRows(tableHeaderRow([]string{"Categoría", "Valor total"}, []int{8, 4}))
	m.AddRows(assetRows(data.Assets.Items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(grandTotalRow(data.Assets.GrandTotal))

	m.AddRows(line.NewRow(4))
	m.AddRows(sectionRow("STOCK POR VENDEDOR"))
	m.AddRows(tableHeaderRow([]string{"Vendedor", "Unidades", "Valor"}, []int{6, 2, 4}))
	m.AddRows(sellerRows(data.Sellers)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(data *dto.InventoryReportDTO) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(data.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04")+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, len(labels))
	for i, l := range labels {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols[i] = col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(cols...)
}

func assetRows(items []dto.CategoryTotalDTO) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow("No hay categorías registradas.")}
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New("$"+formatMoney(it.Total), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}

func grandTotalRow(total decimal.Decimal) core.Row {
	style := props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Align: align.Right, Top: 1, Right: 1}
	return row.New(8).Add(
		col.New(8).Add(text.New("TOTAL GENERAL:", style)),
		col.New(4).Add(text.New("$"+formatMoney(total), style)),
	)
}

func sellerRows(sellers []dto.SellerStockDTO) []core.Row {
	if len(sellers) == 0 {
		return []core.Row{emptyRow("No hay vendedores registrados.")}
	}
	rows := make([]core.Row, 0, len(sellers))
	for _, s := range sellers {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(s.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", s.Units), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(4).Add(text.New("$"+formatMoney(s.Value), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

// formatMoney formatea con dos decimales y separador de miles.
// Ej: 1234567.5 → "1,234,567.50", -12 → "-12.00"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "." + frac
}
