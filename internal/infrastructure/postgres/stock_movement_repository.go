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
	"github.com/jhoicas/estoque-api/internal/domain/validation"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// Claves foráneas de movimientos (nombres por defecto de PostgreSQL) → campo del payload.
var movementForeignKeys = map[string]string{
	"stock_movements_produto_id_fkey":         validation.FieldProductID,
	"stock_movements_usuario_id_fkey":         validation.FieldUserID,
	"stock_movement_products_produto_id_fkey": validation.FieldProductID,
}

// StockMovementRepo movimientos de stock y sus filas por producto (stock_movement_products).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

func movementSelect() sq.SelectBuilder {
	return psql.Select("m.id", "m.data", "m.tipo", "m.quantidade", "m.produto_id", "m.usuario_id", "u.nome").
		From("stock_movements m").
		Join("users u ON u.id = m.usuario_id")
}

func scanMovement(row pgx.Row) (*entity.MovementDetail, error) {
	var m entity.MovementDetail
	if err := row.Scan(&m.ID, &m.Date, &m.Type, &m.Quantity, &m.ProductID, &m.UserID, &m.UserName); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste el movimiento y completa su ID.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO stock_movements (data, tipo, quantidade, produto_id, usuario_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		m.Date, m.Type, m.Quantity, m.ProductID, m.UserID,
	).Scan(&m.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return constraintErr(err, domain.ErrForeignKey, movementForeignKeys)
		}
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// AddProducts inserta una fila por item.
func (r *StockMovementRepo) AddProducts(ctx context.Context, movementID int64, items []entity.BatchItem) error {
	if len(items) == 0 {
		return nil
	}
	b := psql.Insert("stock_movement_products").Columns("movimentacao_id", "produto_id", "quantidade")
	for _, it := range items {
		b = b.Values(movementID, it.ProductID, it.Quantity)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build movement products insert: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return constraintErr(err, domain.ErrForeignKey, movementForeignKeys)
		}
		return fmt.Errorf("insert movement products: %w", err)
	}
	return nil
}

// ReplaceProducts borra las filas del movimiento y vuelve a insertar items.
func (r *StockMovementRepo) ReplaceProducts(ctx context.Context, movementID int64, items []entity.BatchItem) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_movement_products WHERE movimentacao_id = $1`, movementID); err != nil {
		return fmt.Errorf("delete movement products: %w", err)
	}
	return r.AddProducts(ctx, movementID, items)
}

// GetByID obtiene el movimiento con usuario y productos.
func (r *StockMovementRepo) GetByID(ctx context.Context, id int64) (*entity.MovementDetail, error) {
	query, args, err := movementSelect().Where(sq.Eq{"m.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build movement query: %w", err)
	}
	m, err := scanMovement(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	if err := r.attachProducts(ctx, []*entity.MovementDetail{m}); err != nil {
		return nil, err
	}
	return m, nil
}

// Update reemplaza fecha, tipo, cantidad, producto y usuario.
func (r *StockMovementRepo) Update(ctx context.Context, m *entity.StockMovement) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stock_movements SET data = $2, tipo = $3, quantidade = $4, produto_id = $5, usuario_id = $6 WHERE id = $1`,
		m.ID, m.Date, m.Type, m.Quantity, m.ProductID, m.UserID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return constraintErr(err, domain.ErrForeignKey, movementForeignKeys)
		}
		return fmt.Errorf("update stock movement: %w", err)
	}
	return nil
}

// Delete elimina el movimiento; sus filas por producto caen por CASCADE.
func (r *StockMovementRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_movements WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete stock movement: %w", err)
	}
	return nil
}

// List página de movimientos ordenados por ID, con sus productos.
func (r *StockMovementRepo) List(ctx context.Context, p repository.Page) ([]*entity.MovementDetail, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_movements`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock movements: %w", err)
	}

	query, args, err := paginate(movementSelect().OrderBy("m.id"), p.Limit, p.Offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build movement query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock movements: %w", err)
	}
	var list []*entity.MovementDetail
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			rows.Close()
			return nil, 0, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachProducts(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *StockMovementRepo) attachProducts(ctx context.Context, list []*entity.MovementDetail) error {
	if len(list) == 0 {
		return nil
	}
	byID := make(map[int64]*entity.MovementDetail, len(list))
	ids := make([]int64, 0, len(list))
	for _, m := range list {
		byID[m.ID] = m
		ids = append(ids, m.ID)
	}
	query, args, err := psql.Select("mp.movimentacao_id", "mp.produto_id", "p.nome", "mp.quantidade").
		From("stock_movement_products mp").
		Join("products p ON p.id = mp.produto_id").
		Where(sq.Eq{"mp.movimentacao_id": ids}).
		OrderBy("mp.id").ToSql()
	if err != nil {
		return fmt.Errorf("build movement products query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("list movement products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var mp entity.MovementProduct
		if err := rows.Scan(&mp.MovementID, &mp.ProductID, &mp.ProductName, &mp.Quantity); err != nil {
			return fmt.Errorf("scan movement product: %w", err)
		}
		if m := byID[mp.MovementID]; m != nil {
			m.Products = append(m.Products, mp)
		}
	}
	return rows.Err()
}
