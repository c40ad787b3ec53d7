package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// CategoryHandler formularios de categorías.
type CategoryHandler struct {
	uc  *inventory.UseCase
	log *logger.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *inventory.UseCase, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, log: log}
}

// Add godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       x-www-form-urlencoded
// @Param        name  formData  string  true  "Nombre"
// @Success      303
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /add_category [post]
func (h *CategoryHandler) Add(c *fiber.Ctx) error {
	var in dto.CategoryForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if _, err := h.uc.AddCategory(c.UserContext(), in); err != nil {
		return respondError(c, h.log, err)
	}
	return redirectIndex(c)
}

// Get godoc
// @Summary      Valores actuales de una categoría
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /edit_category/{id} [get]
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetCategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Edit godoc
// @Summary      Editar categoría
// @Tags         categories
// @Accept       x-www-form-urlencoded
// @Param        id    path      string  true  "ID de la categoría"
// @Param        name  formData  string  true  "Nombre"
// @Success      303
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /edit_category/{id} [post]
func (h *CategoryHandler) Edit(c *fiber.Ctx) error {
	var in dto.CategoryForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if _, err := h.uc.EditCategory(c.UserContext(), c.Params("id"), in); err != nil {
		return respondError(c, h.log, err)
	}
	return redirectIndex(c)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Description  El efecto sobre los productos depende de DELETE_POLICY (orphan, restrict, cascade).
// @Tags         categories
// @Param        id   path  string  true  "ID de la categoría"
// @Success      303
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /delete_category/{id} [post]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteCategory(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return redirectIndex(c)
}
