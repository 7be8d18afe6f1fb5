package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update no modifica la contraseña si PasswordHash está vacío.
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, p Page) ([]*entity.User, int, error)
}
