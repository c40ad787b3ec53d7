package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/analytics"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// AnalyticsHandler reportes sobre el inventario: gráfico de activos, agregados JSON y PDF.
type AnalyticsHandler struct {
	uc  *analytics.AssetsUseCase
	log *logger.Logger
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.AssetsUseCase, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, log: log}
}

// AssetsChart godoc
// @Summary      Gráfico de activos por categoría
// @Description  Barra por nombre de categoría con la suma de precios de sus productos.
// @Tags         analytics
// @Produce      png
// @Success      200
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /assets_chart [get]
func (h *AnalyticsHandler) AssetsChart(c *fiber.Ctx) error {
	png, err := h.uc.AssetsChart(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(png)
}

// Assets godoc
// @Summary      Total de activos por categoría
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.AssetsReportDTO
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/assets [get]
func (h *AnalyticsHandler) Assets(c *fiber.Ctx) error {
	out, err := h.uc.TotalValueByCategory(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// StockBySeller godoc
// @Summary      Unidades y valor del stock por vendedor
// @Tags         analytics
// @Produce      json
// @Success      200  {array}   dto.SellerStockDTO
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/stock_by_seller [get]
func (h *AnalyticsHandler) StockBySeller(c *fiber.Ctx) error {
	out, err := h.uc.StockBySeller(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de inventario
// @Tags         analytics
// @Produce      application/pdf
// @Success      200
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /assets_report.pdf [get]
func (h *AnalyticsHandler) Report(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.InventoryReport(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Send(pdf)
}
