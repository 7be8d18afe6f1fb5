package postgres

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/estoque-api/internal/domain"
)

// Códigos SQLSTATE usados para traducir errores a sentinelas del dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// psql builder de squirrel con placeholders $1, $2...
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503):
// en INSERT/UPDATE la fila referenciada no existe; en DELETE la fila sigue referenciada.
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}

// constraintErr envuelve sentinel en un domain.ConstraintError con el campo que fields asocia
// al nombre de la constraint violada.
func constraintErr(err, sentinel error, fields map[string]string) error {
	ce := &domain.ConstraintError{Err: sentinel}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		ce.Field = fields[pgErr.ConstraintName]
	}
	return ce
}

// contains patrón ILIKE para coincidencia parcial sin distinguir mayúsculas.
func contains(s string) string {
	return "%" + s + "%"
}

// paginate aplica LIMIT/OFFSET cuando Limit > 0.
func paginate(b sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}
	return b
}
