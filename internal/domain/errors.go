package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
// Los repositorios traducen los códigos de PostgreSQL a estos sentinels.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrReferenced   = errors.New("recurso referenciado por otros registros")
	ErrForeignKey   = errors.New("referencia a un registro inexistente")
	ErrUnauthorized = errors.New("no autorizado")
)

// ConstraintError violación de una constraint asociada a un campo del payload.
// Envuelve ErrDuplicate o ErrForeignKey; Field queda vacío si la constraint no es conocida.
type ConstraintError struct {
	Field string
	Err   error
}

func (e *ConstraintError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + " (" + e.Field + ")"
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// ConstraintField devuelve el campo de la constraint violada, o "" si err no lo indica.
func ConstraintField(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Field
	}
	return ""
}

// FieldError mensaje asociado a un campo del payload.
type FieldError struct {
	Message string `json:"message"`
}

// ValidationError el payload no pasó las reglas; un mensaje por campo.
type ValidationError struct {
	Fields map[string]FieldError
}

// NewValidationError construye el error a partir del mapa campo → mensaje.
func NewValidationError(fields map[string]string) *ValidationError {
	out := make(map[string]FieldError, len(fields))
	for k, msg := range fields {
		out[k] = FieldError{Message: msg}
	}
	return &ValidationError{Fields: out}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k].Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

// NotFoundError la entidad pedida por id no existe.
type NotFoundError struct {
	Message string
}

// NewNotFound construye un NotFoundError.
func NewNotFound(msg string) *NotFoundError { return &NotFoundError{Message: msg} }

func (e *NotFoundError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrNotFound).
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// GenericError fallo de negocio no clasificado (duplicados, referencias, datos auxiliares inválidos).
// No es reintentable.
type GenericError struct {
	Message string
}

// NewGeneric construye un GenericError.
func NewGeneric(msg string) *GenericError { return &GenericError{Message: msg} }

func (e *GenericError) Error() string { return e.Message }

// Kind clasificación de un error para la capa HTTP.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindGeneric
	KindUnauthorized
)

// KindOf clasifica err recorriendo la cadena de wrapping.
func KindOf(err error) Kind {
	var ve *ValidationError
	var nf *NotFoundError
	var ge *GenericError
	switch {
	case err == nil:
		return KindInternal
	case errors.As(err, &ve):
		return KindValidation
	case errors.As(err, &nf), errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.As(err, &ge):
		return KindGeneric
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	default:
		return KindInternal
	}
}
