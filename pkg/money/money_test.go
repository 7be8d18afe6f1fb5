package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/pkg/money"
)

func TestToCents(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"12", 1200},
		{"12.0", 1200},
		{"200.00", 20000},
		{"0.015", 2},
		{"19.994", 1999},
		{"0.004", 0},
		{"0", 0},
		{"92233720368547758.07", 9223372036854775807},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := money.ToCents(decimal.RequireFromString(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToCents_FueraDeRango(t *testing.T) {
	for _, in := range []string{"92233720368547758.08", "100000000000000000", "-100000000000000000"} {
		_, err := money.ToCents(decimal.RequireFromString(in))
		assert.ErrorIs(t, err, money.ErrOutOfRange, in)
	}
}

func TestFromCents(t *testing.T) {
	assert.Equal(t, "12.00", money.FromCents(1200).StringFixed(2))
	assert.True(t, money.FromCents(1999).Equal(decimal.RequireFromString("19.99")))
}
