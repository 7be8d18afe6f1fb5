// Package normalize aplica las normalizaciones usadas para comparar nombres, teléfonos y CNPJ.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var lower = cases.Lower(language.BrazilianPortuguese)

// Name recorta, colapsa espacios internos, compone a NFC y pasa a minúsculas (pt-BR).
// "  Suco  de Laranja " → "suco de laranja".
func Name(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return lower.String(norm.NFC.String(s))
}

// Digits conserva solo los dígitos ASCII ("(11) 98765-4321" → "11987654321").
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
