package analytics

import "github.com/jhoicas/inventario-web/internal/application/dto"

// Bar una barra del gráfico de activos.
type Bar struct {
	Label string
	Value float64
}

// ChartRenderer dibuja un gráfico de barras y devuelve la imagen PNG.
type ChartRenderer interface {
	BarChart(title, xLabel, yLabel string, bars []Bar) ([]byte, error)
}

// ReportGenerator genera el PDF del reporte de inventario.
type ReportGenerator interface {
	InventoryReport(data *dto.InventoryReportDTO) ([]byte, error)
}
