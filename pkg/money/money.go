// Package money convierte importes decimales de la API a centavos enteros y viceversa.
package money

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrOutOfRange el importe en centavos no cabe en un int64.
var ErrOutOfRange = errors.New("money: importe fuera de rango")

var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

// ToCents redondea a 2 decimales (half-up) y devuelve el importe en centavos.
func ToCents(d decimal.Decimal) (int64, error) {
	c := d.Round(2).Shift(2)
	if c.GreaterThan(maxCents) || c.LessThan(minCents) {
		return 0, ErrOutOfRange
	}
	return c.IntPart(), nil
}

// FromCents devuelve el importe decimal (2 decimales) de una cantidad en centavos.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
