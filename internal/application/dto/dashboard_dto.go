package dto

import "time"

// TotalProductsResponse GET /dashboard/total-products.
type TotalProductsResponse struct {
	TotalProducts int64 `json:"totalProducts"`
}

// AmountResponse GET /dashboard/total-amount (centavos).
type AmountResponse struct {
	Amount int64 `json:"amount"`
}

// ExpiringProduct producto dentro de un lote por vencer.
type ExpiringProduct struct {
	ID         int64  `json:"id"`
	Nome       string `json:"nome"`
	Quantidade int64  `json:"quantidade"`
}

// ExpiringBatch lote por vencer.
type ExpiringBatch struct {
	ID         int64             `json:"id"`
	Validade   time.Time         `json:"validade"`
	Fornecedor string            `json:"fornecedor"`
	Produtos   []ExpiringProduct `json:"produtos"`
}

// ExpiringBatchesResponse GET /dashboard/expiring-batches.
type ExpiringBatchesResponse struct {
	Total   int             `json:"total"`
	Batches []ExpiringBatch `json:"batches"`
}

// LowStockProduct asociación con stock bajo.
type LowStockProduct struct {
	ID         int64      `json:"id"`
	Quantidade int64      `json:"quantidade"`
	Produto    ProductRef `json:"produto"`
}

// LowStockResponse GET /dashboard/low-stock.
type LowStockResponse struct {
	Products []LowStockProduct `json:"products"`
	Total    int               `json:"total"`
}

// StockSummaryRow fila de GET /dashboard/stock-summary.
type StockSummaryRow struct {
	ID                    int64  `json:"id"`
	Nome                  string `json:"nome"`
	TotalQuantidade       int64  `json:"totalQuantidade"`
	PrecoUnitarioCentavos int64  `json:"precoUnitarioCentavos"`
	TotalValorCentavos    int64  `json:"totalValorCentavos"`
}
