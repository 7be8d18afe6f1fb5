package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/estoque-api/pkg/normalize"
)

func TestName(t *testing.T) {
	assert.Equal(t, "bebidas", normalize.Name("  Bebidas "))
	assert.Equal(t, "suco de laranja", normalize.Name("Suco   de\tLaranja"))
	assert.Equal(t, "pão de açúcar", normalize.Name("PÃO DE AÇÚCAR"))
	// "e" + acento combinante debe igualar a la forma compuesta.
	assert.Equal(t, normalize.Name("café"), normalize.Name("café"))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "11987654321", normalize.Digits("(11) 98765-4321"))
	assert.Equal(t, "", normalize.Digits("sem número"))
}
