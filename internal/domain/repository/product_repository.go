package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// Page límite y desplazamiento de un listado.
type Page struct {
	Limit  int
	Offset int
}

// ProductFilter filtros del listado de productos (coincidencia parcial, sin distinguir mayúsculas).
type ProductFilter struct {
	Name     string
	Category string
	Page
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	// Delete devuelve domain.ErrReferenced si lotes o movimientos lo referencian.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, int, error)
	// ListBySupplier productos distintos presentes en algún lote del fornecedor.
	ListBySupplier(ctx context.Context, supplierID int64) ([]*entity.Product, error)
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
}
