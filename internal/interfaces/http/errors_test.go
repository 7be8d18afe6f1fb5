package http_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain"
	apphttp "github.com/jhoicas/estoque-api/internal/interfaces/http"
)

func errorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Get("/fail", func(c *fiber.Ctx) error { return err })
	return app
}

func callFail(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestErrorHandler_Validacion(t *testing.T) {
	status, body := callFail(t, errorApp(domain.NewValidationError(map[string]string{
		"name": "O nome é obrigatório.",
	})), "/fail")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
	fields, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{"message": "O nome é obrigatório."}, fields["name"])
}

func TestErrorHandler_Clasificacion(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
		msg    string
	}{
		{"not found", domain.NewNotFound("Produto não encontrado."), http.StatusNotFound, "NOT_FOUND", "Produto não encontrado."},
		{"not found envuelto", fmt.Errorf("buscar: %w", domain.NewNotFound("Lote não encontrado.")), http.StatusNotFound, "NOT_FOUND", "Lote não encontrado."},
		{"generic", domain.NewGeneric("E-mail já cadastrado."), http.StatusBadRequest, "BAD_REQUEST", "E-mail já cadastrado."},
		{"no autorizado", domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED", ""},
		{"interno", errors.New("conexión perdida"), http.StatusInternalServerError, "INTERNAL", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := callFail(t, errorApp(tc.err), "/fail")
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body["code"])
			if tc.msg != "" {
				assert.Equal(t, tc.msg, body["message"])
			}
			assert.NotContains(t, body["message"], "conexión", "el detalle interno no se expone")
		})
	}
}

func TestErrorHandler_RutaInexistente(t *testing.T) {
	status, body := callFail(t, errorApp(nil), "/no-existe")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}
