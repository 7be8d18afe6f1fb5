package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/dashboard"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

type fakeDashboardRepo struct {
	rows      []dashboard.StockRow
	batches   []entity.Batch
	details   []entity.BatchDetail
	lastLimit time.Time
	err       error
}

func (f *fakeDashboardRepo) StockRows(context.Context) ([]dashboard.StockRow, error) {
	return f.rows, f.err
}

func (f *fakeDashboardRepo) BatchPrices(context.Context) ([]entity.Batch, error) {
	return f.batches, f.err
}

func (f *fakeDashboardRepo) BatchesUntil(_ context.Context, limit time.Time) ([]entity.BatchDetail, error) {
	f.lastLimit = limit
	return f.details, f.err
}

type fakePDF struct {
	rows []dashboard.SummaryRow
	at   time.Time
}

func (f *fakePDF) GenerateStockSummaryPDF(_ context.Context, rows []dashboard.SummaryRow, at time.Time) ([]byte, error) {
	f.rows, f.at = rows, at
	return []byte("%PDF-1.3"), nil
}

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newDashboard(repo *fakeDashboardRepo, pdf StockReportGenerator) *DashboardUseCase {
	uc := NewDashboardUseCase(repo, pdf, Defaults{})
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func stockRows() []dashboard.StockRow {
	return []dashboard.StockRow{
		{AssociationID: 1, BatchID: 1, ProductID: 10, ProductName: "suco", Quantity: 50, UnitPriceCents: 1200},
		{AssociationID: 2, BatchID: 1, ProductID: 11, ProductName: "agua", Quantity: 5, UnitPriceCents: 300},
		{AssociationID: 3, BatchID: 2, ProductID: 10, ProductName: "suco", Quantity: 8, UnitPriceCents: 1200},
	}
}

func TestTotalProducts_SumaAsociaciones(t *testing.T) {
	uc := newDashboard(&fakeDashboardRepo{rows: stockRows()}, nil)
	out, err := uc.TotalProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(63), out.TotalProducts)
}

func TestTotalAmount_SumaPrecios(t *testing.T) {
	uc := newDashboard(&fakeDashboardRepo{batches: []entity.Batch{{PriceCents: 20000}, {PriceCents: 550}}}, nil)
	out, err := uc.TotalAmount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(20550), out.Amount)
}

func TestExpiringBatches_LimiteYOrden(t *testing.T) {
	repo := &fakeDashboardRepo{details: []entity.BatchDetail{
		{Batch: entity.Batch{ID: 2, Validity: fixedNow.AddDate(0, 0, 9), SupplierName: "beta"}},
		{Batch: entity.Batch{ID: 1, Validity: fixedNow.AddDate(0, 0, 2), SupplierName: "alfa"},
			Products: []entity.BatchProduct{{ProductID: 10, ProductName: "suco", Quantity: 50}}},
	}}
	uc := newDashboard(repo, nil)

	out, err := uc.ExpiringBatches(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.AddDate(0, 0, DefaultExpiringDays), repo.lastLimit)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, int64(1), out.Batches[0].ID)
	assert.Equal(t, "alfa", out.Batches[0].Fornecedor)
	assert.Equal(t, "suco", out.Batches[0].Produtos[0].Nome)

	out, err = uc.ExpiringBatches(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total, "el lote a 9 días queda fuera")
}

func TestExpiringBatches_DiasNegativos(t *testing.T) {
	uc := newDashboard(&fakeDashboardRepo{}, nil)
	_, err := uc.ExpiringBatches(context.Background(), -1)
	assert.Equal(t, domain.KindGeneric, domain.KindOf(err))
}

func TestLowStock_PrimeraFilaPorProducto(t *testing.T) {
	uc := newDashboard(&fakeDashboardRepo{rows: stockRows()}, nil)

	out, err := uc.LowStock(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	require.Len(t, out.Products, 2)
	assert.Equal(t, int64(2), out.Products[0].ID)
	assert.Equal(t, "suco", out.Products[1].Produto.Nome)
	assert.Equal(t, int64(8), out.Products[1].Quantidade)

	_, err = uc.LowStock(context.Background(), -3)
	assert.Equal(t, domain.KindGeneric, domain.KindOf(err))
}

func TestStockSummary_YPDF(t *testing.T) {
	pdf := &fakePDF{}
	uc := newDashboard(&fakeDashboardRepo{rows: stockRows()}, pdf)

	rows, err := uc.StockSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(50), rows[0].TotalQuantidade)
	assert.Equal(t, int64(60000), rows[0].TotalValorCentavos)

	doc, err := uc.StockSummaryPDF(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
	assert.Len(t, pdf.rows, 2)
	assert.Equal(t, fixedNow, pdf.at)
}

func TestDashboard_PropagaErrorDelRepositorio(t *testing.T) {
	boom := errors.New("db caída")
	uc := newDashboard(&fakeDashboardRepo{err: boom}, nil)

	_, err := uc.TotalProducts(context.Background())
	assert.ErrorIs(t, err, boom)
	_, err = uc.StockSummaryPDF(context.Background())
	assert.Error(t, err)
}
