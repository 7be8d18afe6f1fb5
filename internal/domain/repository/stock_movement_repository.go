package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para movimientos de stock.
type StockMovementRepository interface {
	Create(ctx context.Context, m *entity.StockMovement) error
	// AddProducts inserta una fila por item; domain.ErrForeignKey si un producto no existe.
	AddProducts(ctx context.Context, movementID int64, items []entity.BatchItem) error
	// ReplaceProducts borra las filas del movimiento y vuelve a insertar items.
	ReplaceProducts(ctx context.Context, movementID int64, items []entity.BatchItem) error
	GetByID(ctx context.Context, id int64) (*entity.MovementDetail, error)
	Update(ctx context.Context, m *entity.StockMovement) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, p Page) ([]*entity.MovementDetail, int, error)
}
