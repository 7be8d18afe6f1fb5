package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category (protegido).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id := pathID(c)
	if id == 0 {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "name, description"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  false  "ID (o en el body)"
// @Param        body  body  dto.CategoryRequest  true  "name, description"
// @Success      204
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id := resolveID(c, in.ID)
	if id == 0 {
		return missingID(c)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar categoría (rechazado si tiene productos)
// @Tags         categories
// @Security     Bearer
// @Param        id   path  int  true  "ID de la categoría"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := pathID(c)
	if id == 0 {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
