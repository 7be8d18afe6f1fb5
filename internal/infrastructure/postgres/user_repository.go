package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func userSelect() sq.SelectBuilder {
	return psql.Select("id", "nome", "email", "senha", "tipo_de_acesso").From("users")
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.AccessType); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO users (nome, email, senha, tipo_de_acesso) VALUES ($1, $2, $3, $4) RETURNING id`,
		u.Name, u.Email, u.PasswordHash, u.AccessType,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, sq.Eq{"email": email})
}

func (r *UserRepo) getOne(ctx context.Context, where sq.Eq) (*entity.User, error) {
	query, args, err := userSelect().Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}
	u, err := scanUser(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Update no modifica la contraseña si PasswordHash está vacío.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	b := psql.Update("users").
		Set("nome", u.Name).
		Set("email", u.Email).
		Set("tipo_de_acesso", u.AccessType).
		Where(sq.Eq{"id": u.ID})
	if u.PasswordHash != "" {
		b = b.Set("senha", u.PasswordHash)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build user update: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un usuario; domain.ErrReferenced si tiene movimientos.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// List página de usuarios ordenados por ID.
func (r *UserRepo) List(ctx context.Context, p repository.Page) ([]*entity.User, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	query, args, err := paginate(userSelect().OrderBy("id"), p.Limit, p.Offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build user query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
