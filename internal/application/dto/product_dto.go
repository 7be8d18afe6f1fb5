package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada para crear o actualizar un producto. UnitPrice en reales (12.0 = R$ 12,00).
type ProductRequest struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	CategoryID  int64           `json:"categoryId"`
}

// CategoryRef categoría embebida en un producto.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            int64           `json:"id"`
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario"`
	CategoriaID   int64           `json:"categoriaId"`
	Categoria     *CategoryRef    `json:"categoria,omitempty"`
}

// ProductListQuery filtros de GET /products.
type ProductListQuery struct {
	Name     string `query:"name"`
	Category string `query:"category"`
	PageRequest
}
