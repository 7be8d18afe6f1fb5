package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/validation"
)

func setupProducts(t *testing.T) (*usecase.ProductUseCase, *fakeProductRepo, int64) {
	t.Helper()
	cats := newFakeCategoryRepo()
	require.NoError(t, cats.Create(context.Background(), &entity.Category{Name: "bebidas"}))
	prods := newFakeProductRepo()
	return usecase.NewProductUseCase(prods, cats), prods, 1
}

func sucoRequest(categoryID int64) dto.ProductRequest {
	return dto.ProductRequest{
		Name:        "Suco",
		Description: "Suco natural de laranja",
		UnitPrice:   decimal.RequireFromString("12.0"),
		CategoryID:  categoryID,
	}
}

func TestProductCreate_PrecioEnCentavos(t *testing.T) {
	uc, prods, catID := setupProducts(t)

	out, err := uc.Create(context.Background(), sucoRequest(catID))
	require.NoError(t, err)
	assert.Equal(t, "suco", out.Nome)
	assert.Equal(t, int64(1200), prods.rows[out.ID].UnitPriceCents)
	assert.True(t, out.PrecoUnitario.Equal(decimal.NewFromInt(12)))
	require.NotNil(t, out.Categoria)
	assert.Equal(t, "bebidas", out.Categoria.Nome)
}

func TestProductCreate_PrecioQueNoSeGuardaEnCentavos(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{"0.004", validation.MsgProductUnitPriceInvalid},
		{"100000000000000000", validation.MsgPriceTooBig},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			uc, prods, catID := setupProducts(t)
			in := sucoRequest(catID)
			in.UnitPrice = decimal.RequireFromString(tt.price)

			_, err := uc.Create(context.Background(), in)

			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.want, ve.Fields["unitPrice"].Message)
			assert.Empty(t, prods.rows)
		})
	}
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc, _, _ := setupProducts(t)
	_, err := uc.Create(context.Background(), sucoRequest(99))
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.EqualError(t, err, usecase.MsgCategoryNotFound)
}

func TestProductCreate_Duplicado(t *testing.T) {
	uc, _, catID := setupProducts(t)
	ctx := context.Background()
	_, err := uc.Create(ctx, sucoRequest(catID))
	require.NoError(t, err)

	in := sucoRequest(catID)
	in.Name = " SUCO "
	_, err = uc.Create(ctx, in)
	assert.EqualError(t, err, usecase.MsgProductDuplicate)
}

func TestProductDelete_Referenciado(t *testing.T) {
	uc, prods, catID := setupProducts(t)
	ctx := context.Background()
	out, err := uc.Create(ctx, sucoRequest(catID))
	require.NoError(t, err)
	prods.referenced[out.ID] = true

	err = uc.Delete(ctx, out.ID)
	assert.Equal(t, domain.KindGeneric, domain.KindOf(err))
	assert.Len(t, prods.rows, 1)

	assert.Equal(t, domain.KindNotFound, domain.KindOf(uc.Delete(ctx, 404)))
}

func TestProductList_Paginado(t *testing.T) {
	uc, _, catID := setupProducts(t)
	ctx := context.Background()
	for _, name := range []string{"Suco", "Agua", "Cafe"} {
		in := sucoRequest(catID)
		in.Name = name
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	res, err := uc.List(ctx, dto.ProductListQuery{PageRequest: dto.PageRequest{Page: 2, PageSize: 2}})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.TotalPages)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "cafe", res.Data[0].Nome)
}

func TestProductUpdate_ReemplazaCampos(t *testing.T) {
	uc, prods, catID := setupProducts(t)
	ctx := context.Background()
	out, err := uc.Create(ctx, sucoRequest(catID))
	require.NoError(t, err)

	in := sucoRequest(catID)
	in.Name = "Suco de Uva"
	in.UnitPrice = decimal.RequireFromString("9.99")
	require.NoError(t, uc.Update(ctx, out.ID, in))
	assert.Equal(t, "suco de uva", prods.rows[out.ID].Name)
	assert.Equal(t, int64(999), prods.rows[out.ID].UnitPriceCents)
}
