package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
)

// MovementHandler movimientos de stock.
type MovementHandler struct {
	uc *inventory.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movement
// @Security     Bearer
// @Produce      json
// @Param        page      query  int  false  "Página"  default(1)
// @Param        pageSize  query  int  false  "Tamaño"  default(10)
// @Success      200  {object}  dto.PageResult[dto.MovementResponse]
// @Router       /movement [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageRequest(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento
// @Tags         movement
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /movement/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Registrar movimiento (userId por defecto: usuario del token)
// @Tags         movement
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "date, type, quantity, productId, userId"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /movement [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.MovementRequest
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
// @Summary      Actualizar movimiento
// @Tags         movement
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  false  "ID del movimiento (o en el body)"
// @Param        body  body  dto.MovementRequest  true  "date, type, quantity, productId, userId"
// @Success      204
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /movement/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id := resolveID(c, in.ID)
	if id == 0 {
		return missingID(c)
	}
	if err := h.uc.Update(c.UserContext(), id, GetUserID(c), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar movimiento
// @Tags         movement
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /movement/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id := pathID(c)
	if id == 0 {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: inventory.MsgMovementRemovedSuccess})
}
