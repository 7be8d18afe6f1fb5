package validation

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/pkg/money"
	"github.com/jhoicas/estoque-api/pkg/normalize"
)

// Reglas reutilizables. Las reglas de formato (MaxLen, Pattern) ignoran valores vacíos:
// la ausencia la informa la regla de obligatoriedad del mismo campo.

// Required falla si el valor está ausente, es texto en blanco o es numéricamente cero.
func Required(msg string) Rule {
	return func(_ context.Context, v any) string {
		if isZero(v) {
			return msg
		}
		return ""
	}
}

// MinLen falla si el texto recortado tiene menos de n caracteres (incluye ausente).
func MinLen(n int, msg string) Rule {
	return func(_ context.Context, v any) string {
		s, _ := asString(v)
		if utf8.RuneCountInString(strings.TrimSpace(s)) < n {
			return msg
		}
		return ""
	}
}

// MaxLen falla si el texto recortado supera n caracteres.
func MaxLen(n int, msg string) Rule {
	return func(_ context.Context, v any) string {
		s, ok := asString(v)
		if ok && utf8.RuneCountInString(strings.TrimSpace(s)) > n {
			return msg
		}
		return ""
	}
}

// Pattern falla si un texto no vacío no cumple re.
func Pattern(re *regexp.Regexp, msg string) Rule {
	return func(_ context.Context, v any) string {
		s, ok := asString(v)
		if ok && s != "" && !re.MatchString(s) {
			return msg
		}
		return ""
	}
}

// Positive falla si el número está ausente o es <= 0.
func Positive(msg string) Rule {
	return func(_ context.Context, v any) string {
		d, ok := asDecimal(v)
		if !ok || !d.IsPositive() {
			return msg
		}
		return ""
	}
}

// NotNegative falla si el número es < 0.
func NotNegative(msg string) Rule {
	return func(_ context.Context, v any) string {
		d, ok := asDecimal(v)
		if ok && d.IsNegative() {
			return msg
		}
		return ""
	}
}

// Cents valida un importe positivo tal como se va a guardar: en centavos debe caber en
// un int64 y valer al menos minCents. Ausentes y no positivos los informan otras reglas.
func Cents(minCents int64, minMsg, tooBigMsg string) Rule {
	return func(_ context.Context, v any) string {
		d, ok := asDecimal(v)
		if !ok || !d.IsPositive() {
			return ""
		}
		c, err := money.ToCents(d)
		switch {
		case err != nil:
			return tooBigMsg
		case c < minCents:
			return minMsg
		}
		return ""
	}
}

// DigitsBetween falla si la cantidad de dígitos de un texto no vacío está fuera de [lo, hi].
func DigitsBetween(lo, hi int, msg string) Rule {
	return func(_ context.Context, v any) string {
		s, ok := asString(v)
		if !ok || strings.TrimSpace(s) == "" {
			return ""
		}
		n := len(normalize.Digits(s))
		if n < lo || n > hi {
			return msg
		}
		return ""
	}
}

// OneOf falla si el entero no está en allowed (incluye ausente).
func OneOf(msg string, allowed ...int64) Rule {
	return func(_ context.Context, v any) string {
		n, ok := asInt(v)
		if !ok {
			return msg
		}
		for _, a := range allowed {
			if n == a {
				return ""
			}
		}
		return msg
	}
}

// ValidDate falla si el valor no es una fecha válida.
func ValidDate(msg string) Rule {
	return func(_ context.Context, v any) string {
		if _, ok := asTime(v); !ok {
			return msg
		}
		return ""
	}
}

// NotPast falla si la fecha es anterior a now(). Fechas inválidas se ignoran.
func NotPast(now func() time.Time, msg string) Rule {
	return func(_ context.Context, v any) string {
		t, ok := asTime(v)
		if ok && t.Before(now()) {
			return msg
		}
		return ""
	}
}

// NotFuture falla si la fecha es posterior a now(). Fechas inválidas se ignoran.
func NotFuture(now func() time.Time, msg string) Rule {
	return func(_ context.Context, v any) string {
		t, ok := asTime(v)
		if ok && t.After(now()) {
			return msg
		}
		return ""
	}
}

// Each aplica check a cada elemento de una lista; falla con msg si la lista está vacía
// o si algún elemento no pasa.
func Each[T any](msg string, check func(T) bool) Rule {
	return func(_ context.Context, v any) string {
		items, ok := v.([]T)
		if !ok || len(items) == 0 {
			return msg
		}
		for _, it := range items {
			if !check(it) {
				return msg
			}
		}
		return ""
	}
}

func isZero(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := asString(v); ok {
		return strings.TrimSpace(s) == ""
	}
	if d, ok := asDecimal(v); ok {
		return d.IsZero()
	}
	if t, ok := v.(time.Time); ok {
		return t.IsZero()
	}
	return false
}

func asString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case *string:
		if x == nil {
			return "", false
		}
		return *x, true
	}
	return "", false
}

func asInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case *int64:
		if x == nil {
			return 0, false
		}
		return *x, true
	case *int:
		if x == nil {
			return 0, false
		}
		return int64(*x), true
	}
	return 0, false
}

func asDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, false
		}
		return *x, true
	case float64:
		return decimal.NewFromFloat(x), true
	}
	if n, ok := asInt(v); ok {
		return decimal.NewFromInt(n), true
	}
	return decimal.Zero, false
}

// Formatos aceptados para fechas que llegan como texto.
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func asTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, !x.IsZero()
	case *time.Time:
		if x == nil || x.IsZero() {
			return time.Time{}, false
		}
		return *x, true
	}
	s, ok := asString(v)
	if !ok || strings.TrimSpace(s) == "" {
		return time.Time{}, false
	}
	return ParseDate(s)
}

// ParseDate interpreta una fecha ISO-8601 (con o sin hora). Sin zona se asume UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
