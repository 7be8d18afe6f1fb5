// Package dashboard calcula los indicadores del panel a partir de filas leídas de la base.
// Funciones puras: no hacen I/O ni consultan el reloj.
package dashboard

import (
	"sort"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// MaxLowStockItems cantidad máxima de productos devueltos en el indicador de stock bajo.
const MaxLowStockItems = 3

// StockRow una asociación lote ↔ producto con los datos del producto.
// Las filas deben llegar ordenadas por AssociationID (orden de inserción).
type StockRow struct {
	AssociationID  int64
	BatchID        int64
	ProductID      int64
	ProductName    string
	Quantity       int64
	UnitPriceCents int64
}

// ExpiringBatch lote próximo a vencer.
type ExpiringBatch struct {
	ID           int64
	Validity     time.Time
	SupplierName string
	Products     []entity.BatchProduct
}

// LowStockItem asociación con cantidad baja.
type LowStockItem struct {
	AssociationID int64
	Quantity      int64
	ProductID     int64
	ProductName   string
}

// LowStock resultado del indicador de stock bajo: hasta MaxLowStockItems ítems y el total.
type LowStock struct {
	Items []LowStockItem
	Total int
}

// SummaryRow fila del resumen de stock por producto.
type SummaryRow struct {
	ProductID      int64
	ProductName    string
	Quantity       int64
	UnitPriceCents int64
	TotalCents     int64
}

// TotalUnits suma las cantidades de todas las asociaciones.
func TotalUnits(rows []StockRow) int64 {
	var total int64
	for _, r := range rows {
		total += r.Quantity
	}
	return total
}

// TotalBatchValue suma el precio de todos los lotes.
func TotalBatchValue(batches []entity.Batch) int64 {
	var total int64
	for _, b := range batches {
		total += b.PriceCents
	}
	return total
}

// Expiring devuelve los lotes con vencimiento <= limit ordenados por vencimiento ascendente.
func Expiring(batches []entity.BatchDetail, limit time.Time) []ExpiringBatch {
	out := make([]ExpiringBatch, 0, len(batches))
	for _, b := range batches {
		if b.Validity.After(limit) {
			continue
		}
		out = append(out, ExpiringBatch{
			ID:           b.ID,
			Validity:     b.Validity,
			SupplierName: b.SupplierName,
			Products:     b.Products,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Validity.Before(out[j].Validity) })
	return out
}

// LowStockProducts filtra asociaciones con cantidad <= threshold, conserva la primera por producto
// y devuelve como máximo MaxLowStockItems junto con el total de productos encontrados.
func LowStockProducts(rows []StockRow, threshold int64) LowStock {
	matches := firstPerProduct(rows, func(r StockRow) bool { return r.Quantity <= threshold })
	items := make([]LowStockItem, 0, min(len(matches), MaxLowStockItems))
	for _, r := range matches[:min(len(matches), MaxLowStockItems)] {
		items = append(items, LowStockItem{
			AssociationID: r.AssociationID,
			Quantity:      r.Quantity,
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
		})
	}
	return LowStock{Items: items, Total: len(matches)}
}

// StockSummary una fila por producto usando su primera asociación (no suma entre lotes).
func StockSummary(rows []StockRow) []SummaryRow {
	firsts := firstPerProduct(rows, nil)
	out := make([]SummaryRow, 0, len(firsts))
	for _, r := range firsts {
		out = append(out, SummaryRow{
			ProductID:      r.ProductID,
			ProductName:    r.ProductName,
			Quantity:       r.Quantity,
			UnitPriceCents: r.UnitPriceCents,
			TotalCents:     r.Quantity * r.UnitPriceCents,
		})
	}
	return out
}

func firstPerProduct(rows []StockRow, keep func(StockRow) bool) []StockRow {
	seen := make(map[int64]struct{}, len(rows))
	out := make([]StockRow, 0, len(rows))
	for _, r := range rows {
		if keep != nil && !keep(r) {
			continue
		}
		if _, ok := seen[r.ProductID]; ok {
			continue
		}
		seen[r.ProductID] = struct{}{}
		out = append(out, r)
	}
	return out
}
