package dashboard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain/dashboard"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

var rows = []dashboard.StockRow{
	{AssociationID: 1, BatchID: 1, ProductID: 10, ProductName: "suco", Quantity: 50, UnitPriceCents: 1200},
	{AssociationID: 2, BatchID: 1, ProductID: 11, ProductName: "água", Quantity: 5, UnitPriceCents: 300},
	{AssociationID: 3, BatchID: 2, ProductID: 10, ProductName: "suco", Quantity: 8, UnitPriceCents: 1200},
	{AssociationID: 4, BatchID: 2, ProductID: 12, ProductName: "café", Quantity: 20, UnitPriceCents: 2500},
	{AssociationID: 5, BatchID: 3, ProductID: 13, ProductName: "chá", Quantity: 1, UnitPriceCents: 900},
	{AssociationID: 6, BatchID: 3, ProductID: 14, ProductName: "leite", Quantity: 2, UnitPriceCents: 600},
}

func TestTotalUnits(t *testing.T) {
	assert.Equal(t, int64(86), dashboard.TotalUnits(rows))
	assert.Equal(t, int64(0), dashboard.TotalUnits(nil))
}

func TestTotalBatchValue(t *testing.T) {
	batches := []entity.Batch{{PriceCents: 20000}, {PriceCents: 1550}}
	assert.Equal(t, int64(21550), dashboard.TotalBatchValue(batches))
}

func TestLowStockProducts_PrimeraFilaPorProducto(t *testing.T) {
	got := dashboard.LowStockProducts(rows, 20)

	// suco (asociación 3), água, café, chá, leite coinciden: 5 productos distintos.
	assert.Equal(t, 5, got.Total)
	require.Len(t, got.Items, dashboard.MaxLowStockItems)
	assert.Equal(t, int64(2), got.Items[0].AssociationID)
	assert.Equal(t, int64(3), got.Items[1].AssociationID, "suco entra por su fila de 8 unidades")
	assert.Equal(t, int64(4), got.Items[2].AssociationID)
}

func TestLowStockProducts_SinCoincidencias(t *testing.T) {
	got := dashboard.LowStockProducts(rows, 0)
	assert.Equal(t, 0, got.Total)
	assert.Empty(t, got.Items)
}

func TestStockSummary_NoSumaEntreLotes(t *testing.T) {
	got := dashboard.StockSummary(rows)
	require.Len(t, got, 5)
	assert.Equal(t, dashboard.SummaryRow{
		ProductID: 10, ProductName: "suco", Quantity: 50, UnitPriceCents: 1200, TotalCents: 60000,
	}, got[0])
	assert.Equal(t, int64(50000), got[2].TotalCents)
}

func TestExpiring(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }
	batches := []entity.BatchDetail{
		{Batch: entity.Batch{ID: 1, Validity: day(20), SupplierName: "alfa"}},
		{Batch: entity.Batch{ID: 2, Validity: day(5), SupplierName: "beta"},
			Products: []entity.BatchProduct{{ProductID: 10, ProductName: "suco", Quantity: 3}}},
		{Batch: entity.Batch{ID: 3, Validity: day(16), SupplierName: "gama"}},
		{Batch: entity.Batch{ID: 4, Validity: day(15), SupplierName: "delta"}},
	}
	got := dashboard.Expiring(batches, day(16))
	require.Len(t, got, 3)
	assert.Equal(t, []int64{2, 4, 3}, []int64{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, "beta", got[0].SupplierName)
	assert.Len(t, got[0].Products, 1)
}
