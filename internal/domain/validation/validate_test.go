package validation_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/validation"
)

func fixed(msg string) validation.Rule {
	return func(context.Context, any) string { return msg }
}

func TestValidate_UnMensajePorCampo_GanaElUltimo(t *testing.T) {
	rules := validation.RuleSet{
		"a": {fixed("primero"), fixed(""), fixed("último")},
		"b": {fixed(""), fixed("")},
		"c": {fixed("solo")},
	}
	errs, err := validation.Validate(context.Background(), validation.Data{}, rules)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "último", "c": "solo"}, errs)
}

func TestValidate_CamposSinReglasNoSeValidan(t *testing.T) {
	rules := validation.RuleSet{"name": {validation.Required("obrigatório")}}
	errs, err := validation.Validate(context.Background(), validation.Data{"name": "ok", "extra": ""}, rules)
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestValidate_EsperaReglasLentas(t *testing.T) {
	var calls atomic.Int32
	slow := func(msg string) validation.Rule {
		return func(ctx context.Context, _ any) string {
			calls.Add(1)
			time.Sleep(20 * time.Millisecond)
			return msg
		}
	}
	rules := validation.RuleSet{
		"x": {slow("lenta 1"), fixed("rápida"), slow("lenta 2")},
		"y": {slow("")},
	}
	errs, err := validation.Validate(context.Background(), validation.Data{}, rules)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, map[string]string{"x": "lenta 2"}, errs)
}

func TestValidate_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := validation.Validate(ctx, validation.Data{}, validation.RuleSet{"a": {fixed("")}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheck_DevuelveValidationError(t *testing.T) {
	err := validation.Check(context.Background(), validation.Data{}, validation.Category())
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, validation.MsgCategoryNameRequired, ve.Fields["name"].Message)
	assert.Equal(t, validation.MsgCategoryDescriptionRequired, ve.Fields["description"].Message)

	ok := validation.Data{"name": "Bebidas", "description": "Refrigerantes e sucos"}
	assert.NoError(t, validation.Check(context.Background(), ok, validation.Category()))
}

func TestRuleSets(t *testing.T) {
	validation.Now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { validation.Now = time.Now })

	tests := []struct {
		name  string
		rules validation.RuleSet
		data  validation.Data
		want  map[string]string
	}{
		{
			name:  "categoría con caracteres inválidos",
			rules: validation.Category(),
			data:  validation.Data{"name": "Bebidas!", "description": "Refrigerantes e sucos"},
			want:  map[string]string{"name": validation.MsgCategoryNameInvalid},
		},
		{
			name:  "categoría con nombre largo",
			rules: validation.Category(),
			data:  validation.Data{"name": "Uma categoria com nome enorme", "description": "Refrigerantes e sucos"},
			want:  map[string]string{"name": validation.MsgCategoryNameTooBig},
		},
		{
			name:  "producto válido con acentos",
			rules: validation.Product(),
			data: validation.Data{"name": "Pão de Açúcar", "description": "Pão doce tradicional",
				"unitPrice": decimal.RequireFromString("12.0"), "categoryId": int64(1)},
			want: map[string]string{},
		},
		{
			name:  "producto con precio cero y sin categoría",
			rules: validation.Product(),
			data:  validation.Data{"name": "Suco", "description": "Suco natural de laranja", "unitPrice": decimal.Zero},
			want: map[string]string{
				"unitPrice":  validation.MsgProductUnitPriceInvalid,
				"categoryId": validation.MsgProductCategoryIDRequired,
			},
		},
		{
			name:  "producto con precio menor a un centavo",
			rules: validation.Product(),
			data: validation.Data{"name": "Suco", "description": "Suco natural de laranja",
				"unitPrice": decimal.RequireFromString("0.004"), "categoryId": int64(1)},
			want: map[string]string{"unitPrice": validation.MsgProductUnitPriceInvalid},
		},
		{
			name:  "producto con precio que no cabe en centavos",
			rules: validation.Product(),
			data: validation.Data{"name": "Suco", "description": "Suco natural de laranja",
				"unitPrice": decimal.RequireFromString("100000000000000000"), "categoryId": int64(1)},
			want: map[string]string{"unitPrice": validation.MsgPriceTooBig},
		},
		{
			name:  "fornecedor con teléfono corto",
			rules: validation.Supplier(),
			data:  validation.Data{"name": "Distribuidora", "telephone": "1234-5678", "address": "Rua A, 100", "cnpj": "11222333000181"},
			want:  map[string]string{"telephone": validation.MsgSupplierTelephoneSize},
		},
		{
			name:  "fornecedor vacío",
			rules: validation.Supplier(),
			data:  validation.Data{},
			want: map[string]string{
				"name":      validation.MsgSupplierNameRequired,
				"telephone": validation.MsgSupplierTelephoneRequired,
				"address":   validation.MsgSupplierAddressRequired,
				"cnpj":      validation.MsgSupplierCNPJRequired,
			},
		},
		{
			name:  "lote vencido",
			rules: validation.Batch(true),
			data: validation.Data{"price": decimal.NewFromInt(200), "quantity": int64(50), "validity": "2025-05-01",
				"supplierId": int64(1), "products": []entity.BatchItem{{ProductID: 1, Quantity: 50}}},
			want: map[string]string{"validity": validation.MsgBatchDateOnPast},
		},
		{
			name:  "lote con fecha inválida y sin productos",
			rules: validation.Batch(true),
			data: validation.Data{"price": decimal.NewFromInt(200), "quantity": int64(50), "validity": "31/12/2030",
				"supplierId": int64(1), "products": []entity.BatchItem{}},
			want: map[string]string{
				"validity": validation.MsgBatchInvalidDate,
				"products": validation.MsgBatchProductsInvalid,
			},
		},
		{
			name:  "lote con precio negativo",
			rules: validation.Batch(false),
			data:  validation.Data{"price": decimal.NewFromInt(-1), "quantity": int64(5), "validity": "2030-01-01", "supplierId": int64(2)},
			want:  map[string]string{"price": validation.MsgBatchPriceNegative},
		},
		{
			name:  "lote con precio menor a un centavo",
			rules: validation.Batch(false),
			data:  validation.Data{"price": decimal.RequireFromString("0.004"), "quantity": int64(5), "validity": "2030-01-01", "supplierId": int64(2)},
			want:  map[string]string{"price": validation.MsgBatchPriceMinCents},
		},
		{
			name:  "lote con el mayor precio representable",
			rules: validation.Batch(false),
			data:  validation.Data{"price": decimal.RequireFromString("92233720368547758.07"), "quantity": int64(5), "validity": "2030-01-01", "supplierId": int64(2)},
			want:  map[string]string{},
		},
		{
			name:  "lote con precio fuera de rango",
			rules: validation.Batch(false),
			data:  validation.Data{"price": decimal.RequireFromString("92233720368547758.08"), "quantity": int64(5), "validity": "2030-01-01", "supplierId": int64(2)},
			want:  map[string]string{"price": validation.MsgPriceTooBig},
		},
		{
			name:  "movimiento en el futuro",
			rules: validation.StockMovement(),
			data: validation.Data{"date": "2025-06-02T00:00:00Z", "type": "Saída", "quantity": int64(3),
				"productId": int64(1), "userId": int64(1)},
			want: map[string]string{"date": validation.MsgMovementDateFuture},
		},
		{
			name:  "movimiento con cantidad cero",
			rules: validation.StockMovement(),
			data: validation.Data{"date": "2025-05-30", "type": "Saída", "quantity": int64(0),
				"productId": int64(1), "userId": int64(1)},
			want: map[string]string{"quantity": validation.MsgMovementQuantityInvalid},
		},
		{
			name:  "usuario con nivel desconocido",
			rules: validation.UserCreate(),
			data:  validation.Data{"name": "Ana", "email": "ana@loja.com", "password": "x", "accessType": int64(7)},
			want:  map[string]string{"accessType": validation.MsgUserAccessTypeRequired},
		},
		{
			name:  "actualización de usuario sin contraseña",
			rules: validation.UserUpdate(),
			data:  validation.Data{"name": "Ana", "email": "ana@loja.com", "accessType": int64(2)},
			want:  map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, err := validation.Validate(context.Background(), tt.data, tt.rules)
			require.NoError(t, err)
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, ok := validation.ParseDate("2030-12-31")
	require.True(t, ok)
	assert.Equal(t, time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC), d)

	_, ok = validation.ParseDate("2030-12-31T10:00:00-03:00")
	assert.True(t, ok)

	_, ok = validation.ParseDate("amanhã")
	assert.False(t, ok)
}
