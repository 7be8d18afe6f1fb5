package repository

import (
	"context"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// BatchFilter filtros del listado de lotes. ValidityFrom/To acotan el vencimiento (inclusive).
type BatchFilter struct {
	SupplierID   int64
	ValidityFrom *time.Time
	ValidityTo   *time.Time
	Page
}

// BatchRepository define el puerto de persistencia para Batch y sus asociaciones con productos.
type BatchRepository interface {
	Create(ctx context.Context, b *entity.Batch) error
	// AddProducts inserta una asociación por item; domain.ErrForeignKey si un producto no existe.
	AddProducts(ctx context.Context, batchID int64, items []entity.BatchItem) error
	GetByID(ctx context.Context, id int64) (*entity.BatchDetail, error)
	Update(ctx context.Context, b *entity.Batch) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f BatchFilter) ([]*entity.Batch, int, error)
}
