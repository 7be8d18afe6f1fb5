// Package analytics contiene los casos de uso del panel de indicadores de estoque.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/dashboard"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// Valores por defecto de los indicadores.
const (
	DefaultExpiringDays      = 15
	DefaultLowStockThreshold = 20
)

const (
	MsgInvalidDays      = "O parâmetro limit deve ser um número inteiro maior que zero."
	MsgInvalidThreshold = "O parâmetro threshold deve ser um número inteiro maior que zero."
)

// StockReportGenerator renderiza el resumen de stock como documento PDF.
type StockReportGenerator interface {
	GenerateStockSummaryPDF(ctx context.Context, rows []dashboard.SummaryRow, generatedAt time.Time) ([]byte, error)
}

// Defaults valores usados cuando la petición no trae limit/threshold.
type Defaults struct {
	ExpiringDays      int
	LowStockThreshold int
}

// DashboardUseCase indicadores de solo lectura.
//
// El repositorio devuelve filas crudas; todos los cálculos se delegan al paquete dashboard.
type DashboardUseCase struct {
	repo     repository.DashboardRepository
	pdf      StockReportGenerator
	defaults Defaults
	now      func() time.Time
}

// NewDashboardUseCase construye el caso de uso. Defaults no positivos usan los valores del paquete.
func NewDashboardUseCase(repo repository.DashboardRepository, pdf StockReportGenerator, defaults Defaults) *DashboardUseCase {
	if defaults.ExpiringDays <= 0 {
		defaults.ExpiringDays = DefaultExpiringDays
	}
	if defaults.LowStockThreshold <= 0 {
		defaults.LowStockThreshold = DefaultLowStockThreshold
	}
	return &DashboardUseCase{repo: repo, pdf: pdf, defaults: defaults, now: time.Now}
}

// TotalProducts total de unidades en estoque (suma de todas las asociaciones lote ↔ producto).
func (uc *DashboardUseCase) TotalProducts(ctx context.Context) (*dto.TotalProductsResponse, error) {
	rows, err := uc.repo.StockRows(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TotalProductsResponse{TotalProducts: dashboard.TotalUnits(rows)}, nil
}

// TotalAmount valor total de los lotes en centavos.
func (uc *DashboardUseCase) TotalAmount(ctx context.Context) (*dto.AmountResponse, error) {
	batches, err := uc.repo.BatchPrices(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AmountResponse{Amount: dashboard.TotalBatchValue(batches)}, nil
}

// ExpiringBatches lotes que vencen en los próximos days días. days == 0 usa el default.
func (uc *DashboardUseCase) ExpiringBatches(ctx context.Context, days int) (*dto.ExpiringBatchesResponse, error) {
	if days == 0 {
		days = uc.defaults.ExpiringDays
	}
	if days < 0 {
		return nil, domain.NewGeneric(MsgInvalidDays)
	}
	limit := uc.now().AddDate(0, 0, days)
	batches, err := uc.repo.BatchesUntil(ctx, limit)
	if err != nil {
		return nil, err
	}
	expiring := dashboard.Expiring(batches, limit)

	out := &dto.ExpiringBatchesResponse{Total: len(expiring), Batches: make([]dto.ExpiringBatch, 0, len(expiring))}
	for _, b := range expiring {
		products := make([]dto.ExpiringProduct, 0, len(b.Products))
		for _, p := range b.Products {
			products = append(products, dto.ExpiringProduct{ID: p.ProductID, Nome: p.ProductName, Quantidade: p.Quantity})
		}
		out.Batches = append(out.Batches, dto.ExpiringBatch{
			ID:         b.ID,
			Validade:   b.Validity,
			Fornecedor: b.SupplierName,
			Produtos:   products,
		})
	}
	return out, nil
}

// LowStock productos con cantidad <= threshold (máximo 3) y el total encontrado.
func (uc *DashboardUseCase) LowStock(ctx context.Context, threshold int) (*dto.LowStockResponse, error) {
	if threshold == 0 {
		threshold = uc.defaults.LowStockThreshold
	}
	if threshold < 0 {
		return nil, domain.NewGeneric(MsgInvalidThreshold)
	}
	rows, err := uc.repo.StockRows(ctx)
	if err != nil {
		return nil, err
	}
	low := dashboard.LowStockProducts(rows, int64(threshold))

	out := &dto.LowStockResponse{Total: low.Total, Products: make([]dto.LowStockProduct, 0, len(low.Items))}
	for _, it := range low.Items {
		out.Products = append(out.Products, dto.LowStockProduct{
			ID:         it.AssociationID,
			Quantidade: it.Quantity,
			Produto:    dto.ProductRef{ID: it.ProductID, Nome: it.ProductName},
		})
	}
	return out, nil
}

// StockSummary una fila por producto con cantidad, precio unitario y valor total.
func (uc *DashboardUseCase) StockSummary(ctx context.Context) ([]dto.StockSummaryRow, error) {
	summary, err := uc.summary(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockSummaryRow, 0, len(summary))
	for _, r := range summary {
		out = append(out, dto.StockSummaryRow{
			ID:                    r.ProductID,
			Nome:                  r.ProductName,
			TotalQuantidade:       r.Quantity,
			PrecoUnitarioCentavos: r.UnitPriceCents,
			TotalValorCentavos:    r.TotalCents,
		})
	}
	return out, nil
}

// StockSummaryPDF el mismo resumen renderizado como PDF.
func (uc *DashboardUseCase) StockSummaryPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("analytics: generador de PDF no configurado")
	}
	summary, err := uc.summary(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateStockSummaryPDF(ctx, summary, uc.now())
}

func (uc *DashboardUseCase) summary(ctx context.Context) ([]dashboard.SummaryRow, error) {
	rows, err := uc.repo.StockRows(ctx)
	if err != nil {
		return nil, err
	}
	return dashboard.StockSummary(rows), nil
}
