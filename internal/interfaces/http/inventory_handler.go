package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// InventoryHandler página principal: las cuatro colecciones del inventario.
type InventoryHandler struct {
	uc  *inventory.UseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// Index godoc
// @Summary      Listar el inventario completo
// @Description  Categorías, productos, vendedores y stock, leídos en una sola vista consistente.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.IndexResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       / [get]
func (h *InventoryHandler) Index(c *fiber.Ctx) error {
	out, err := h.uc.Index(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
