package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// ProductHandler formularios de productos.
type ProductHandler struct {
	uc  *inventory.UseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *inventory.UseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// Add godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       x-www-form-urlencoded
// @Param        name         formData  string  true  "Nombre"
// @Param        price        formData  string  true  "Precio"
// @Param        category_id  formData  string  true  "ID de la categoría"
// @Success      303
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /add_product [post]
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	var in dto.ProductForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if _, err := h.uc.AddProduct(c.UserContext(), in); err != nil {
		return respondError(c, h.log, err)
	}
	return redirectIndex(c)
}

// Get godoc
// @Summary      Valores actuales de un producto y categorías elegibles
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.EditProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /edit_product/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Edit godoc
// @Summary      Editar producto
// @Tags         products
// @Accept       x-www-form-urlencoded
// @Param        id           path      string  true  "ID del producto"
// @Param        name         formData  string  true  "Nombre"
// @Param        price        formData  string  true  "Precio"
// @Param        category_id  formData  string  true  "ID de la categoría"
// @Success      303
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /edit_product/{id} [post]
func (h *ProductHandler) Edit(c *fiber.Ctx) error {
	var in dto.ProductForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if _, err := h.uc.EditProduct(c.UserContext(), c.Params("id"), in); err != nil {
		return respondError(c, h.log, err)
	}
	return redirectIndex(c)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Param        id   path  string  true  "ID del producto"
// @Success      303
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /delete_product/{id} [post]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return redirectIndex(c)
}
