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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// Constraints únicas de suppliers → campo del payload.
var supplierUniqueKeys = map[string]string{
	"suppliers_nome_key":     validation.FieldName,
	"suppliers_telefone_key": validation.FieldTelephone,
	"suppliers_cnpj_key":     validation.FieldCNPJ,
}

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para fornecedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func supplierSelect() sq.SelectBuilder {
	return psql.Select("id", "nome", "telefone", "endereco", "cnpj").From("suppliers")
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := row.Scan(&s.ID, &s.Name, &s.Phone, &s.Address, &s.CNPJ); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un fornecedor y completa su ID.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO suppliers (nome, telefone, endereco, cnpj) VALUES ($1, $2, $3, $4) RETURNING id`,
		s.Name, s.Phone, s.Address, s.CNPJ,
	).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return constraintErr(err, domain.ErrDuplicate, supplierUniqueKeys)
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *SupplierRepo) GetByName(ctx context.Context, name string) (*entity.Supplier, error) {
	return r.getOne(ctx, sq.Eq{"nome": name})
}

func (r *SupplierRepo) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Supplier, error) {
	return r.getOne(ctx, sq.Eq{"cnpj": cnpj})
}

func (r *SupplierRepo) GetByPhone(ctx context.Context, phone string) (*entity.Supplier, error) {
	return r.getOne(ctx, sq.Eq{"telefone": phone})
}

func (r *SupplierRepo) getOne(ctx context.Context, where sq.Eq) (*entity.Supplier, error) {
	query, args, err := supplierSelect().Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build supplier query: %w", err)
	}
	s, err := scanSupplier(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// Update reemplaza los campos del fornecedor.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	_, err := r.q.Exec(ctx,
		`UPDATE suppliers SET nome = $2, telefone = $3, endereco = $4, cnpj = $5 WHERE id = $1`,
		s.ID, s.Name, s.Phone, s.Address, s.CNPJ,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return constraintErr(err, domain.ErrDuplicate, supplierUniqueKeys)
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina un fornecedor; domain.ErrReferenced si tiene lotes.
func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

// List filtra por nombre y CNPJ (coincidencia parcial) con paginación.
func (r *SupplierRepo) List(ctx context.Context, f repository.SupplierFilter) ([]*entity.Supplier, int, error) {
	where := sq.And{}
	if f.Name != "" {
		where = append(where, sq.ILike{"nome": contains(f.Name)})
	}
	if f.CNPJ != "" {
		where = append(where, sq.Like{"cnpj": contains(f.CNPJ)})
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("suppliers").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count suppliers: %w", err)
	}

	query, args, err := paginate(supplierSelect().Where(where).OrderBy("id"), f.Limit, f.Offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build supplier query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// CountBatches cantidad de lotes del fornecedor.
func (r *SupplierRepo) CountBatches(ctx context.Context, supplierID int64) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM batches WHERE fornecedor_id = $1`, supplierID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count supplier batches: %w", err)
	}
	return n, nil
}
