package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/analytics"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.UseCase
	AssetsUC    *analytics.AssetsUseCase
	Logger      *logger.Logger
	ServiceName string
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	app.Get("/", NewInventoryHandler(deps.InventoryUC, log).Index)

	categories := NewCategoryHandler(deps.InventoryUC, log)
	app.Post("/add_category", categories.Add)
	app.Get("/edit_category/:id", categories.Get)
	app.Post("/edit_category/:id", categories.Edit)
	app.Post("/delete_category/:id", categories.Delete)

	products := NewProductHandler(deps.InventoryUC, log)
	app.Post("/add_product", products.Add)
	app.Get("/edit_product/:id", products.Get)
	app.Post("/edit_product/:id", products.Edit)
	app.Post("/delete_product/:id", products.Delete)

	sellers := NewSellerHandler(deps.InventoryUC, log)
	app.Post("/add_seller", sellers.Add)
	app.Get("/edit_seller/:id", sellers.Get)
	app.Post("/edit_seller/:id", sellers.Edit)
	app.Post("/delete_seller/:id", sellers.Delete)

	sources := NewProductSourceHandler(deps.InventoryUC, log)
	app.Post("/add_product_source", sources.Add)
	app.Get("/edit_product_source/:id", sources.Get)
	app.Post("/edit_product_source/:id", sources.Edit)
	app.Post("/delete_product_source/:id", sources.Delete)

	// Reportes
	reports := NewAnalyticsHandler(deps.AssetsUC, log)
	app.Get("/assets_chart", reports.AssetsChart)
	app.Get("/assets_report.pdf", reports.Report)

	api := app.Group("/api")
	api.Get("/assets", reports.Assets)
	api.Get("/stock_by_seller", reports.StockBySeller)
}
