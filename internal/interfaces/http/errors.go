package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
)

// Mensajes de la capa HTTP.
const (
	msgInvalidBody      = "Corpo da requisição inválido."
	msgMissingID        = "O id é obrigatório e deve ser um número inteiro positivo."
	msgValidation       = "Dados inválidos."
	msgInternal         = "Erro interno do servidor."
	msgUnauthorized     = "Não autorizado."
	msgForbidden        = "Acesso negado para o seu nível de acesso."
	msgRouteNotFound    = "Rota não encontrada."
	msgTooManyAttempts  = "Muitas tentativas de login. Tente novamente em instantes."
	msgTokenCheckFailed = "Não foi possível verificar o token, tente novamente mais tarde."
)

// writeError traduce un error de la capa de aplicación a la respuesta HTTP:
// ValidationError → 400 con el mapa de campos, NotFound → 404, Generic → 400, resto → 500.
func writeError(c *fiber.Ctx, err error) error {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		var ve *domain.ValidationError
		errors.As(err, &ve)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Code:    "VALIDATION",
			Message: msgValidation,
			Errors:  ve.Fields,
		})
	case domain.KindNotFound:
		var nf *domain.NotFoundError
		msg := err.Error()
		if errors.As(err, &nf) {
			msg = nf.Message
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
	case domain.KindGeneric:
		var ge *domain.GenericError
		errors.As(err, &ge)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: ge.Message})
	case domain.KindUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: msgUnauthorized})
	default:
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msgInternal})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: msgInvalidBody})
}

func missingID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: msgMissingID})
}

// ErrorHandler manejador de errores de Fiber para lo que no pasa por writeError
// (rutas inexistentes, panics recuperados, errores de fiber).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msgRouteNotFound})
		case fiber.StatusMethodNotAllowed:
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "METHOD_NOT_ALLOWED", Message: fe.Message})
		}
		if fe.Code < fiber.StatusInternalServerError {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: fe.Message})
		}
	}
	return writeError(c, err)
}
