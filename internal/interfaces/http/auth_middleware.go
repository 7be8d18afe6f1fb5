package http

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/pkg/jwt"
)

// Locals keys que deja AuthMiddleware en Fiber.
const (
	LocalUserID     = "user_id"
	LocalAccessType = "access_type"
	LocalTokenID    = "token_id"
	LocalTokenExp   = "token_exp"
)

// RevocationChecker consulta si el jti de un token fue revocado (logout).
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware valida el Bearer Token JWT (firma, expiración y revocación) y guarda
// usuario, nivel de acceso, jti y expiración en c.Locals. revoked puede ser nil.
func AuthMiddleware(jwtSecret string, revoked RevocationChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Header Authorization obrigatório."})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Formato: Bearer <token>."})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Token vazio."})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Token inválido ou expirado."})
		}
		if revoked != nil && claims.ID != "" {
			isRevoked, err := revoked.IsRevoked(c.UserContext(), claims.ID)
			if err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "TOKEN_CHECK_FAILED", Message: msgTokenCheckFailed})
			}
			if isRevoked {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "REVOKED_TOKEN", Message: "Token revogado."})
			}
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalAccessType, claims.AccessType)
		c.Locals(LocalTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Locals(LocalTokenExp, claims.ExpiresAt.Time)
		}
		return c.Next()
	}
}

// RequireAccess permite el paso solo a los niveles de acceso indicados (1 admin, 2 gerente, 3 funcionário).
// Debe usarse DESPUÉS de AuthMiddleware: sin nivel en el contexto responde 401.
func RequireAccess(levels ...int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		access := GetAccessType(c)
		if access == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ACCESS", Message: "Nível de acesso ausente no token."})
		}
		if !slices.Contains(levels, access) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: msgForbidden})
		}
		return c.Next()
	}
}

// GetUserID devuelve el id del usuario autenticado (0 si no hay).
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetAccessType devuelve el nivel de acceso del usuario autenticado (0 si no hay).
func GetAccessType(c *fiber.Ctx) int {
	a, _ := c.Locals(LocalAccessType).(int)
	return a
}

// GetTokenID devuelve el jti del token presentado.
func GetTokenID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalTokenID).(string)
	return s
}

// GetTokenTTL tiempo de validez restante del token presentado.
func GetTokenTTL(c *fiber.Ctx) time.Duration {
	exp, ok := c.Locals(LocalTokenExp).(time.Time)
	if !ok {
		return 0
	}
	return max(time.Until(exp), 0)
}
