package entity

import "time"

// Batch lote de stock con vencimiento y fornecedor.
// Quantity es la suma de las cantidades de sus productos al crearse.
type Batch struct {
	ID           int64
	PriceCents   int64
	Quantity     int64
	Validity     time.Time
	SupplierID   int64
	SupplierName string // solo en lecturas
}

// BatchItem par (producto, cantidad) enviado al crear un lote.
type BatchItem struct {
	ProductID int64
	Quantity  int64
}

// BatchProduct asociación lote ↔ producto tal como se lee.
type BatchProduct struct {
	ProductID   int64
	ProductName string
	Quantity    int64
}

// BatchDetail lote con sus productos.
type BatchDetail struct {
	Batch
	Products []BatchProduct
}

// TotalQuantity suma las cantidades de items.
func TotalQuantity(items []BatchItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Quantity
	}
	return total
}
