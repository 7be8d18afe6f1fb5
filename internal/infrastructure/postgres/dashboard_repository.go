package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/estoque-api/internal/domain/dashboard"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para los indicadores del panel.
// No agrega en SQL: los cálculos viven en el paquete dashboard.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del panel.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// StockRows todas las asociaciones lote ↔ producto en orden de inserción.
func (r *DashboardRepo) StockRows(ctx context.Context) ([]dashboard.StockRow, error) {
	const query = `
	SELECT
	    bp.id,
	    bp.lote_id,
	    bp.produto_id,
	    p.nome,
	    bp.quantidade,
	    p.preco_unitario
	FROM batch_products bp
	JOIN products p ON p.id = bp.produto_id
	ORDER BY bp.id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dashboard stock rows: %w", err)
	}
	defer rows.Close()

	var out []dashboard.StockRow
	for rows.Next() {
		var s dashboard.StockRow
		if err := rows.Scan(&s.AssociationID, &s.BatchID, &s.ProductID, &s.ProductName, &s.Quantity, &s.UnitPriceCents); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// BatchPrices ID y precio de todos los lotes.
func (r *DashboardRepo) BatchPrices(ctx context.Context) ([]entity.Batch, error) {
	rows, err := r.q.Query(ctx, `SELECT id, preco FROM batches ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("dashboard batch prices: %w", err)
	}
	defer rows.Close()

	var out []entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(&b.ID, &b.PriceCents); err != nil {
			return nil, fmt.Errorf("scan batch price: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// BatchesUntil lotes con vencimiento <= limit, con nombre del fornecedor y productos.
func (r *DashboardRepo) BatchesUntil(ctx context.Context, limit time.Time) ([]entity.BatchDetail, error) {
	query, args, err := batchSelect().
		Where(sq.LtOrEq{"b.validade": limit}).
		OrderBy("b.validade", "b.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build expiring batches query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dashboard expiring batches: %w", err)
	}
	var out []entity.BatchDetail
	var ids []int64
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan expiring batch: %w", err)
		}
		out = append(out, entity.BatchDetail{Batch: *b})
		ids = append(ids, b.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	products, err := batchProducts(ctx, r.q, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Products = products[out[i].ID]
	}
	return out, nil
}
