package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Get* devuelven (nil, nil) cuando no existe el registro.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Category, error)
}
