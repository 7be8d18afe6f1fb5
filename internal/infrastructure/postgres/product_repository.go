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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

var productColumns = []string{
	"p.id", "p.nome", "p.descricao", "p.preco_unitario", "p.categoria_id", "c.nome",
}

func productSelect() sq.SelectBuilder {
	return psql.Select(productColumns...).
		From("products p").
		Join("categories c ON c.id = p.categoria_id")
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.UnitPriceCents, &p.CategoryID, &p.CategoryName); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto y completa su ID.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO products (nome, descricao, preco_unitario, categoria_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		p.Name, p.Description, p.UnitPriceCents, p.CategoryID,
	).Scan(&p.ID)
	return productWriteErr("insert product", err)
}

// GetByID obtiene un producto por ID con el nombre de su categoría.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.getOne(ctx, sq.Eq{"p.id": id})
}

// GetByName obtiene un producto por nombre normalizado.
func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	return r.getOne(ctx, sq.Eq{"p.nome": name})
}

func (r *ProductRepo) getOne(ctx context.Context, where sq.Eq) (*entity.Product, error) {
	query, args, err := productSelect().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build product query: %w", err)
	}
	p, err := scanProduct(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update reemplaza los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET nome = $2, descricao = $3, preco_unitario = $4, categoria_id = $5 WHERE id = $1`,
		p.ID, p.Name, p.Description, p.UnitPriceCents, p.CategoryID,
	)
	return productWriteErr("update product", err)
}

func productWriteErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return domain.ErrForeignKey
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// Delete elimina un producto; domain.ErrReferenced si lotes o movimientos lo referencian.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List filtra por nombre y nombre de categoría (ILIKE) y devuelve la página pedida junto con el total.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	where := sq.And{}
	if f.Name != "" {
		where = append(where, sq.ILike{"p.nome": contains(f.Name)})
	}
	if f.Category != "" {
		where = append(where, sq.ILike{"c.nome": contains(f.Category)})
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").
		From("products p").
		Join("categories c ON c.id = p.categoria_id").
		Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query, args, err := paginate(productSelect().Where(where).OrderBy("p.id"), f.Limit, f.Offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build product query: %w", err)
	}
	list, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListBySupplier productos distintos presentes en algún lote del fornecedor.
func (r *ProductRepo) ListBySupplier(ctx context.Context, supplierID int64) ([]*entity.Product, error) {
	query, args, err := productSelect().
		Where(sq.Expr(`EXISTS (SELECT 1 FROM batch_products bp JOIN batches b ON b.id = bp.lote_id
			WHERE bp.produto_id = p.id AND b.fornecedor_id = ?)`, supplierID)).
		OrderBy("p.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build product query: %w", err)
	}
	return r.query(ctx, query, args...)
}

// CountByCategory cantidad de productos de la categoría.
func (r *ProductRepo) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE categoria_id = $1`, categoryID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return n, nil
}

func (r *ProductRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
