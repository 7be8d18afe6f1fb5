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

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo lotes y sus asociaciones con productos (batch_products).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

func batchSelect() sq.SelectBuilder {
	return psql.Select("b.id", "b.preco", "b.quantidade", "b.validade", "b.fornecedor_id", "s.nome").
		From("batches b").
		Join("suppliers s ON s.id = b.fornecedor_id")
}

func scanBatch(row pgx.Row) (*entity.Batch, error) {
	var b entity.Batch
	if err := row.Scan(&b.ID, &b.PriceCents, &b.Quantity, &b.Validity, &b.SupplierID, &b.SupplierName); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste el lote y completa su ID.
func (r *BatchRepo) Create(ctx context.Context, b *entity.Batch) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO batches (preco, quantidade, validade, fornecedor_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		b.PriceCents, b.Quantity, b.Validity, b.SupplierID,
	).Scan(&b.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// AddProducts inserta una asociación por item en un único INSERT multi-fila.
func (r *BatchRepo) AddProducts(ctx context.Context, batchID int64, items []entity.BatchItem) error {
	if len(items) == 0 {
		return nil
	}
	b := psql.Insert("batch_products").Columns("lote_id", "produto_id", "quantidade")
	for _, it := range items {
		b = b.Values(batchID, it.ProductID, it.Quantity)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build batch products insert: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert batch products: %w", err)
	}
	return nil
}

// GetByID obtiene el lote con fornecedor y productos.
func (r *BatchRepo) GetByID(ctx context.Context, id int64) (*entity.BatchDetail, error) {
	query, args, err := batchSelect().Where(sq.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch query: %w", err)
	}
	b, err := scanBatch(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	products, err := batchProducts(ctx, r.q, []int64{b.ID})
	if err != nil {
		return nil, err
	}
	return &entity.BatchDetail{Batch: *b, Products: products[b.ID]}, nil
}

// Update reemplaza precio, cantidad, vencimiento y fornecedor.
func (r *BatchRepo) Update(ctx context.Context, b *entity.Batch) error {
	_, err := r.q.Exec(ctx,
		`UPDATE batches SET preco = $2, quantidade = $3, validade = $4, fornecedor_id = $5 WHERE id = $1`,
		b.ID, b.PriceCents, b.Quantity, b.Validity, b.SupplierID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("update batch: %w", err)
	}
	return nil
}

// Delete elimina el lote; las asociaciones caen por CASCADE.
func (r *BatchRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM batches WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}
	return nil
}

// List filtra por fornecedor y rango de vencimiento con paginación.
func (r *BatchRepo) List(ctx context.Context, f repository.BatchFilter) ([]*entity.Batch, int, error) {
	where := sq.And{}
	if f.SupplierID > 0 {
		where = append(where, sq.Eq{"b.fornecedor_id": f.SupplierID})
	}
	if f.ValidityFrom != nil {
		where = append(where, sq.GtOrEq{"b.validade": *f.ValidityFrom})
	}
	if f.ValidityTo != nil {
		where = append(where, sq.LtOrEq{"b.validade": *f.ValidityTo})
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("batches b").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count batches: %w", err)
	}

	query, args, err := paginate(batchSelect().Where(where).OrderBy("b.id"), f.Limit, f.Offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build batch query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// batchProducts lee las asociaciones de los lotes indicados, agrupadas por lote y en orden de inserción.
func batchProducts(ctx context.Context, q Querier, batchIDs []int64) (map[int64][]entity.BatchProduct, error) {
	out := make(map[int64][]entity.BatchProduct, len(batchIDs))
	if len(batchIDs) == 0 {
		return out, nil
	}
	query, args, err := psql.Select("bp.lote_id", "bp.produto_id", "p.nome", "bp.quantidade").
		From("batch_products bp").
		Join("products p ON p.id = bp.produto_id").
		Where(sq.Eq{"bp.lote_id": batchIDs}).
		OrderBy("bp.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch products query: %w", err)
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list batch products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var batchID int64
		var bp entity.BatchProduct
		if err := rows.Scan(&batchID, &bp.ProductID, &bp.ProductName, &bp.Quantity); err != nil {
			return nil, fmt.Errorf("scan batch product: %w", err)
		}
		out[batchID] = append(out[batchID], bp)
	}
	return out, rows.Err()
}
