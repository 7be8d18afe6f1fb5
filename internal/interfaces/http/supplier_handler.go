package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// SupplierHandler maneja las peticiones HTTP para fornecedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List godoc
// @Summary      Listar fornecedores
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        name      query  string  false  "Filtro por nombre (parcial)"
// @Param        cnpj      query  string  false  "Filtro por CNPJ (parcial)"
// @Param        page      query  int     false  "Página"  default(1)
// @Param        pageSize  query  int     false  "Tamaño"  default(10)
// @Success      200  {object}  dto.PageResult[dto.SupplierResponse]
// @Router       /suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), dto.SupplierListQuery{
		Name:        c.Query("name"),
		CNPJ:        c.Query("cnpj"),
		PageRequest: pageRequest(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener fornecedor por ID
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del fornecedor"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Crear fornecedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SupplierRequest  true  "name, telephone, address, cnpj"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.SupplierRequest
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
// @Summary      Actualizar fornecedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  false  "ID (o en el body)"
// @Param        body  body  dto.SupplierRequest  true  "name, telephone, address, cnpj"
// @Success      204
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.SupplierRequest
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
// @Summary      Eliminar fornecedor (rechazado si tiene lotes)
// @Tags         suppliers
// @Security     Bearer
// @Param        id   path  int  true  "ID del fornecedor"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id := pathID(c)
	if id == 0 {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
