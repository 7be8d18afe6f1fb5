package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/estoque-api/internal/domain"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.Kind
	}{
		{"validación", domain.NewValidationError(map[string]string{"name": "O nome é obrigatório."}), domain.KindValidation},
		{"no encontrado envuelto", fmt.Errorf("svc: %w", domain.NewNotFound("Produto não encontrado.")), domain.KindNotFound},
		{"sentinel no encontrado", fmt.Errorf("repo: %w", domain.ErrNotFound), domain.KindNotFound},
		{"genérico", domain.NewGeneric("CNPJ inválido."), domain.KindGeneric},
		{"no autorizado", domain.ErrUnauthorized, domain.KindUnauthorized},
		{"sentinel de repositorio", domain.ErrDuplicate, domain.KindInternal},
		{"infraestructura", errors.New("connection refused"), domain.KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.KindOf(tt.err))
		})
	}
}

func TestNotFoundError_IsErrNotFound(t *testing.T) {
	err := fmt.Errorf("wrap: %w", domain.NewNotFound("Lote não encontrado."))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "wrap: Lote não encontrado.", err.Error())
}

func TestValidationError_Mensaje(t *testing.T) {
	err := domain.NewValidationError(map[string]string{"price": "b", "name": "a"})
	assert.Equal(t, "validación: name: a; price: b", err.Error())
	assert.Equal(t, "a", err.Fields["name"].Message)
}

func TestConstraintError(t *testing.T) {
	err := fmt.Errorf("insert: %w", &domain.ConstraintError{Field: "userId", Err: domain.ErrForeignKey})
	assert.ErrorIs(t, err, domain.ErrForeignKey)
	assert.Equal(t, "userId", domain.ConstraintField(err))
	assert.Equal(t, "insert: referencia a un registro inexistente (userId)", err.Error())

	assert.Empty(t, domain.ConstraintField(domain.ErrForeignKey))
	assert.Equal(t, domain.KindInternal, domain.KindOf(&domain.ConstraintError{Err: domain.ErrDuplicate}))
}
