package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
)

// pathID lee :id de la ruta; 0 si falta o no es un entero positivo.
func pathID(c *fiber.Ctx) int64 {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0
	}
	return int64(id)
}

// resolveID usa :id si está presente; si no, el id del cuerpo (PUT /recurso con id en el body).
func resolveID(c *fiber.Ctx, bodyID int64) int64 {
	if id := pathID(c); id > 0 {
		return id
	}
	if bodyID > 0 {
		return bodyID
	}
	return 0
}

// pageRequest lee ?page=&pageSize= aplicando los valores por defecto.
func pageRequest(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{
		Page:     c.QueryInt("page", dto.DefaultPage),
		PageSize: c.QueryInt("pageSize", dto.DefaultPageSize),
	}
	p.Normalize()
	return p
}

// positiveQuery lee un entero > 0 de la query. Ausente → 0 (el caso de uso aplica el default);
// presente pero inválido o <= 0 → -1.
func positiveQuery(c *fiber.Ctx, key string) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return -1
	}
	return n
}
