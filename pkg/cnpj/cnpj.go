// Package cnpj valida el Cadastro Nacional da Pessoa Jurídica (Receita Federal, Brasil).
package cnpj

import (
	"fmt"

	"github.com/jhoicas/estoque-api/pkg/normalize"
)

// Length cantidad de dígitos de un CNPJ completo (12 de base + 2 verificadores).
const Length = 14

// pesos módulo 11 para el primer y segundo dígito verificador.
var (
	firstWeights  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Normalize elimina todo lo que no sea dígito ("11.222.333/0001-81" → "11222333000181").
func Normalize(s string) string {
	return normalize.Digits(s)
}

// Validate comprueba longitud y ambos dígitos verificadores. Acepta la máscara habitual.
// Se rechazan las secuencias repetidas (00000000000000, 11111111111111, ...).
func Validate(s string) error {
	digits := Normalize(s)
	if len(digits) != Length {
		return fmt.Errorf("cnpj: se esperaban %d dígitos, se encontraron %d", Length, len(digits))
	}
	if repeated(digits) {
		return fmt.Errorf("cnpj: secuencia repetida")
	}
	first := checkDigit(digits[:12], firstWeights[:])
	if digits[12] != first {
		return fmt.Errorf("cnpj: primer dígito verificador inválido: esperado %c, recibido %c", first, digits[12])
	}
	second := checkDigit(digits[:13], secondWeights[:])
	if digits[13] != second {
		return fmt.Errorf("cnpj: segundo dígito verificador inválido: esperado %c, recibido %c", second, digits[13])
	}
	return nil
}

// IsValid atajo booleano de Validate.
func IsValid(s string) bool {
	return Validate(s) == nil
}

// Complete calcula los dos dígitos verificadores para una base de 12 dígitos.
func Complete(base string) (string, error) {
	digits := Normalize(base)
	if len(digits) != 12 {
		return "", fmt.Errorf("cnpj: la base debe tener 12 dígitos, se encontraron %d", len(digits))
	}
	withFirst := digits + string(checkDigit(digits, firstWeights[:]))
	return withFirst + string(checkDigit(withFirst, secondWeights[:])), nil
}

func checkDigit(digits string, weights []int) byte {
	var sum int
	for i := 0; i < len(weights); i++ {
		sum += int(digits[i]-'0') * weights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func repeated(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
