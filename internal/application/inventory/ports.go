package inventory

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD (read committed),
// pasando repositorios atados a esa tx. Commit si fn devuelve nil; Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		batchRepo repository.BatchRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
