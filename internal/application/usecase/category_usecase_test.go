package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

func TestCategoryCreate_NormalizaNombre(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo())

	out, err := uc.Create(context.Background(), dto.CategoryRequest{Name: "  Bebidas ", Description: "Refrigerantes e sucos"})
	require.NoError(t, err)
	assert.Equal(t, "bebidas", out.Nome)
	assert.Equal(t, int64(1), out.ID)
}

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo())
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.CategoryRequest{Name: "Bebidas", Description: "Refrigerantes e sucos"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CategoryRequest{Name: "BEBIDAS", Description: "Outra descrição longa"})
	assert.Equal(t, domain.KindGeneric, domain.KindOf(err))
	assert.EqualError(t, err, usecase.MsgCategoryDuplicate)
}

func TestCategoryUpdate_NoEncontradaAntesQueReglas(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo())
	err := uc.Update(context.Background(), 9, dto.CategoryRequest{})
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestCategoryUpdate_ConservaSuPropioNombre(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo())
	ctx := context.Background()
	c, err := uc.Create(ctx, dto.CategoryRequest{Name: "Bebidas", Description: "Refrigerantes e sucos"})
	require.NoError(t, err)

	require.NoError(t, uc.Update(ctx, c.ID, dto.CategoryRequest{Name: "Bebidas", Description: "Somente refrigerantes"}))
	got, err := uc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Somente refrigerantes", got.Descricao)
}

func TestCategoryDelete_ConProductosFalla(t *testing.T) {
	cats := newFakeCategoryRepo()
	prods := newFakeProductRepo()
	uc := usecase.NewCategoryUseCase(cats, prods)
	ctx := context.Background()

	c, err := uc.Create(ctx, dto.CategoryRequest{Name: "Bebidas", Description: "Refrigerantes e sucos"})
	require.NoError(t, err)
	require.NoError(t, prods.Create(ctx, &entity.Product{Name: "suco", CategoryID: c.ID}))

	err = uc.Delete(ctx, c.ID)
	var ge *domain.GenericError
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, usecase.MsgCategoryReferenced, ge.Message)
	assert.Len(t, cats.rows, 1, "la categoría sigue existiendo")
	assert.Len(t, prods.rows, 1)

	delete(prods.rows, 1)
	require.NoError(t, uc.Delete(ctx, c.ID))
	assert.Empty(t, cats.rows)
}

func TestCategoryValidacion(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo())
	_, err := uc.Create(context.Background(), dto.CategoryRequest{Name: "Be", Description: "curta"})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "description")
}
