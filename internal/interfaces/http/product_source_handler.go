package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// ProductSourceHandler formularios de stock por vendedor.
type ProductSourceHandler struct {
	uc  *inventory.UseCase
	log *logger.Logger
}

// NewProductSourceHandler construye el handler.
func NewProductSourceHandler(uc *inventory.UseCase, log *logger.Logger) *ProductSourceHandler {
	return &ProductSourceHandler{uc: uc, log: log}
}

// Add godoc
// @Summary      Registrar stock de un producto en un vendedor
// @Tags         product_sources
// @Accept       x-www-form-urlencoded
// @Param        product_id  formData  string  true  "ID del producto"
// @Param        seller_id   formData  string  true  "ID del vendedor"
// @Param        quantity    formData  string  true  "Cantidad"
// @Success      303
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /add_product_source [post]
func (h *ProductSourceHandler) Add(c *fiber.Ctx) error {
	var in dto.ProductSourceForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if _, err := h.uc.AddProductSource(c.UserContext(), in); err != nil {
		return respondError(c, h.log, err)
	}
	return redirectIndex(c)
}

// Get godoc
// @Summary      Valores actuales de un registro de stock y opciones del formulario
// @Tags         product_sources
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.EditProductSourceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /edit_product_source/{id} [get]
func (h *ProductSourceHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetProductSource(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Edit godoc
// @Summary      Editar registro de stock
// @Tags         product_sources
// @Accept       x-www-form-urlencoded
// @Param        id          path      string  true  "ID del registro"
// @Param        product_id  formData  string  true  "ID del producto"
// @Param        seller_id   formData  string  true  "ID del vendedor"
// @Param        quantity    formData  string  true  "Cantidad"
// @Success      303
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /edit_product_source/{id} [post]
func (h *ProductSourceHandler) Edit(c *fiber.Ctx) error {
	var in dto.ProductSourceForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if _, err := h.uc.EditProductSource(c.UserContext(), c.Params("id"), in); err != nil {
		return respondError(c, h.log, err)
	}
	return redirectIndex(c)
}

// Delete godoc
// @Summary      Eliminar registro de stock
// @Tags         product_sources
// @Param        id   path  string  true  "ID del registro"
// @Success      303
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /delete_product_source/{id} [post]
func (h *ProductSourceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteProductSource(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return redirectIndex(c)
}
