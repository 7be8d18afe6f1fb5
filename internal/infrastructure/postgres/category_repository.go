package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría y completa su ID.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO categories (nome, descricao) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Description,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	return r.getOne(ctx, `SELECT id, nome, descricao FROM categories WHERE id = $1`, id)
}

// GetByName obtiene una categoría por nombre normalizado.
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.getOne(ctx, `SELECT id, nome, descricao FROM categories WHERE nome = $1`, name)
}

func (r *CategoryRepo) getOne(ctx context.Context, query string, arg any) (*entity.Category, error) {
	var c entity.Category
	if err := r.q.QueryRow(ctx, query, arg).Scan(&c.ID, &c.Name, &c.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update reemplaza nombre y descripción.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx,
		`UPDATE categories SET nome = $2, descricao = $3 WHERE id = $1`,
		c.ID, c.Name, c.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría; domain.ErrReferenced si algún producto la usa.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// List todas las categorías ordenadas por ID.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nome, descricao FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
