package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
)

// BatchHandler lotes. POST crea lote + asociaciones + movimiento de entrada en una sola transacción.
type BatchHandler struct {
	uc *inventory.BatchUseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *inventory.BatchUseCase) *BatchHandler {
	return &BatchHandler{uc: uc}
}

// List godoc
// @Summary      Listar lotes
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        supplierId  query  int     false  "Filtro por fornecedor"
// @Param        validity    query  string  false  "Vencimiento dd/mm/aaaa (día completo)"
// @Param        page        query  int     false  "Página"  default(1)
// @Param        pageSize    query  int     false  "Tamaño"  default(10)
// @Success      200  {object}  dto.PageResult[dto.BatchResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /batches [get]
func (h *BatchHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), dto.BatchListQuery{
		SupplierID:  int64(c.QueryInt("supplierId", 0)),
		Validity:    c.Query("validity"),
		PageRequest: pageRequest(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener lote con productos
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del lote"
// @Success      200  {object}  dto.BatchDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /batches/{id} [get]
func (h *BatchHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Crear lote (genera movimiento "Entrada")
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "price, validity, supplierId, products"
// @Success      201   {object}  dto.CreatedBatchResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /batches [post]
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar lote
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  false  "ID del lote (o en el body)"
// @Param        body  body  dto.UpdateBatchRequest  true  "price, quantity, validity, supplierId"
// @Success      204
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /batches/{id} [put]
func (h *BatchHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBatchRequest
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
// @Summary      Eliminar lote
// @Tags         batches
// @Security     Bearer
// @Param        id   path  int  true  "ID del lote"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /batches/{id} [delete]
func (h *BatchHandler) Delete(c *fiber.Ctx) error {
	id := pathID(c)
	if id == 0 {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
