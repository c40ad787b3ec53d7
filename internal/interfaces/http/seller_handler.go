package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// SellerHandler formularios de vendedores.
type SellerHandler struct {
	uc  *inventory.UseCase
	log *logger.Logger
}

// NewSellerHandler construye el handler.
func NewSellerHandler(uc *inventory.UseCase, log *logger.Logger) *SellerHandler {
	return &SellerHandler{uc: uc, log: log}
}

// Add godoc
// @Summary      Crear vendedor
// @Tags         sellers
// @Accept       x-www-form-urlencoded
// @Param        name  formData  string  true  "Nombre"
// @Success      303
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /add_seller [post]
func (h *SellerHandler) Add(c *fiber.Ctx) error {
	var in dto.SellerForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if _, err := h.uc.AddSeller(c.UserContext(), in); err != nil {
		return respondError(c, h.log, err)
	}
	return redirectIndex(c)
}

// Get godoc
// @Summary      Valores actuales de un vendedor
// @Tags         sellers
// @Produce      json
// @Param        id   path  string  true  "ID del vendedor"
// @Success      200  {object}  dto.SellerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /edit_seller/{id} [get]
func (h *SellerHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetSeller(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Edit godoc
// @Summary      Editar vendedor
// @Tags         sellers
// @Accept       x-www-form-urlencoded
// @Param        id    path      string  true  "ID del vendedor"
// @Param        name  formData  string  true  "Nombre"
// @Success      303
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /edit_seller/{id} [post]
func (h *SellerHandler) Edit(c *fiber.Ctx) error {
	var in dto.SellerForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if _, err := h.uc.EditSeller(c.UserContext(), c.Params("id"), in); err != nil {
		return respondError(c, h.log, err)
	}
	return redirectIndex(c)
}

// Delete godoc
// @Summary      Eliminar vendedor
// @Tags         sellers
// @Param        id   path  string  true  "ID del vendedor"
// @Success      303
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /delete_seller/{id} [post]
func (h *SellerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteSeller(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return redirectIndex(c)
}
