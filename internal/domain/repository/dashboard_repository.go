package repository

import (
	"context"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/dashboard"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// DashboardRepository consultas de solo lectura para los indicadores del panel.
// Devuelve filas crudas; los cálculos viven en el paquete dashboard.
type DashboardRepository interface {
	// StockRows todas las asociaciones lote ↔ producto ordenadas por id de asociación.
	StockRows(ctx context.Context) ([]dashboard.StockRow, error)
	BatchPrices(ctx context.Context) ([]entity.Batch, error)
	// BatchesUntil lotes con vencimiento <= limit, con nombre del fornecedor y productos.
	BatchesUntil(ctx context.Context, limit time.Time) ([]entity.BatchDetail, error)
}
