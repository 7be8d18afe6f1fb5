package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchItemRequest producto y cantidad dentro de un lote.
type BatchItemRequest struct {
	ID         int64 `json:"id"`
	Quantidade int64 `json:"quantidade"`
}

// CreateBatchRequest entrada para crear un lote. Quantity se recalcula a partir de Products;
// si se omite se asume la suma.
type CreateBatchRequest struct {
	Price      decimal.Decimal    `json:"price"`
	Quantity   int64              `json:"quantity"`
	Validity   string             `json:"validity"`
	SupplierID int64              `json:"supplierId"`
	Products   []BatchItemRequest `json:"products"`
}

// UpdateBatchRequest entrada para actualizar un lote (sin productos).
type UpdateBatchRequest struct {
	ID         int64           `json:"id"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int64           `json:"quantity"`
	Validity   string          `json:"validity"`
	SupplierID int64           `json:"supplierId"`
}

// SupplierRef fornecedor embebido en un lote.
type SupplierRef struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// BatchResponse lote en listados.
type BatchResponse struct {
	ID         int64           `json:"id"`
	Preco      decimal.Decimal `json:"preco"`
	Quantidade int64           `json:"quantidade"`
	Validade   time.Time       `json:"validade"`
	Fornecedor SupplierRef     `json:"fornecedor"`
}

// BatchProductResponse producto dentro del detalle de un lote.
type BatchProductResponse struct {
	Nome       string `json:"nome"`
	Quantidade int64  `json:"quantidade"`
}

// BatchDetailResponse detalle de un lote.
type BatchDetailResponse struct {
	ID         int64                  `json:"id"`
	Preco      decimal.Decimal        `json:"preco"`
	Quantidade int64                  `json:"quantidade"`
	Validade   time.Time              `json:"validade"`
	Fornecedor string                 `json:"fornecedor"`
	Produtos   []BatchProductResponse `json:"produtos"`
}

// CreatedBatchResponse lote creado más el movimiento de entrada derivado.
type CreatedBatchResponse struct {
	ID           int64           `json:"id"`
	Preco        decimal.Decimal `json:"preco"`
	Quantidade   int64           `json:"quantidade"`
	Validade     time.Time       `json:"validade"`
	FornecedorID int64           `json:"fornecedorId"`
	MovimentID   int64           `json:"movimentId"`
	MovimentType string          `json:"movimentType"`
	MovimentDate time.Time       `json:"movimentDate"`
}

// BatchListQuery filtros de GET /batches. Validity en formato dd/mm/aaaa.
type BatchListQuery struct {
	SupplierID int64  `query:"supplierId"`
	Validity   string `query:"validity"`
	PageRequest
}
