// Package validation evalúa reglas por campo sobre un payload y agrega un mensaje por campo.
package validation

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/estoque-api/internal/domain"
)

// Rule devuelve "" si el valor es válido o el mensaje de error en caso contrario.
// Puede consultar recursos externos (usa ctx) y se ejecuta en paralelo con las demás reglas.
type Rule func(ctx context.Context, value any) string

// RuleSet campo → reglas en orden de declaración.
type RuleSet map[string][]Rule

// Data payload a validar: campo → valor. Los campos sin reglas se ignoran.
type Data map[string]any

// Validate ejecuta todas las reglas de todos los campos y espera a que terminen.
// Si varias reglas del mismo campo fallan, gana el mensaje de la última declarada.
// Devuelve un mapa vacío cuando ninguna regla falla.
func Validate(ctx context.Context, data Data, rules RuleSet) (map[string]string, error) {
	results := make(map[string][]string, len(rules))
	g, gctx := errgroup.WithContext(ctx)
	for field, fieldRules := range rules {
		value := data[field]
		out := make([]string, len(fieldRules))
		results[field] = out
		for i, rule := range fieldRules {
			g.Go(func() error {
				out[i] = rule(gctx, value)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	errs := make(map[string]string)
	for field, msgs := range results {
		for _, msg := range msgs {
			if msg != "" {
				errs[field] = msg
			}
		}
	}
	return errs, nil
}

// Check es Validate devolviendo *domain.ValidationError cuando alguna regla falla.
func Check(ctx context.Context, data Data, rules RuleSet) error {
	errs, err := Validate(ctx, data, rules)
	if err != nil {
		return err
	}
	if len(errs) == 0 {
		return nil
	}
	return domain.NewValidationError(errs)
}
