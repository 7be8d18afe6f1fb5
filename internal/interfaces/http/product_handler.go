package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        name      query  string  false  "Filtro por nombre (parcial)"
// @Param        category  query  string  false  "Filtro por nombre de categoría (parcial)"
// @Param        page      query  int     false  "Página"  default(1)
// @Param        pageSize  query  int     false  "Tamaño"  default(10)
// @Success      200  {object}  dto.PageResult[dto.ProductResponse]
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), dto.ProductListQuery{
		Name:        c.Query("name"),
		Category:    c.Query("category"),
		PageRequest: pageRequest(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
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

// ListBySupplier godoc
// @Summary      Productos presentes en lotes de un fornecedor
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        supplierId  path  int  true  "ID del fornecedor"
// @Success      200  {array}  dto.ProductResponse
// @Router       /products/supplier/{supplierId} [get]
func (h *ProductHandler) ListBySupplier(c *fiber.Ctx) error {
	supplierID, err := c.ParamsInt("supplierId")
	if err != nil || supplierID <= 0 {
		return missingID(c)
	}
	out, err := h.uc.ListBySupplier(c.UserContext(), int64(supplierID))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
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
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  false  "ID del producto (o en el body)"
// @Param        body  body  dto.ProductRequest  true  "Datos a actualizar"
// @Success      204
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
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
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id   path  int  true  "ID del producto"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := pathID(c)
	if id == 0 {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
