package dto

import "github.com/jhoicas/estoque-api/internal/domain"

// Valores por defecto de paginación.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest paginación para listados (?page=&pageSize=).
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// Normalize aplica valores por defecto si Page/PageSize son inválidos.
func (p *PageRequest) Normalize() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset desplazamiento de la página actual.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResult listado paginado.
type PageResult[T any] struct {
	Data        []T `json:"data"`
	Total       int `json:"total"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
}

// NewPageResult arma el resultado calculando el total de páginas.
func NewPageResult[T any](data []T, total int, p PageRequest) PageResult[T] {
	if data == nil {
		data = []T{}
	}
	pages := 0
	if p.PageSize > 0 {
		pages = (total + p.PageSize - 1) / p.PageSize
	}
	return PageResult[T]{Data: data, Total: total, TotalPages: pages, CurrentPage: p.Page, PageSize: p.PageSize}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo de error de validación: un mensaje por campo.
type ValidationErrorResponse struct {
	Code    string                       `json:"code"`
	Message string                       `json:"message"`
	Errors  map[string]domain.FieldError `json:"errors"`
}

// MessageResponse respuesta con un mensaje simple.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse id del recurso creado.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
