package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// SupplierFilter filtros del listado de fornecedores.
type SupplierFilter struct {
	Name string
	CNPJ string
	Page
}

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	GetByName(ctx context.Context, name string) (*entity.Supplier, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*entity.Supplier, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Supplier, error)
	Update(ctx context.Context, s *entity.Supplier) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f SupplierFilter) ([]*entity.Supplier, int, error)
	CountBatches(ctx context.Context, supplierID int64) (int, error)
}
