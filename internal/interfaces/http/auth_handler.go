package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
)

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: auth.MsgInvalidCredentials})
		}
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (revoca el token presentado)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), GetTokenID(c), GetTokenTTL(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: auth.MsgLogoutSuccess})
}

// Me godoc
// @Summary      Datos del token actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"id": GetUserID(c), "accessType": GetAccessType(c)})
}
