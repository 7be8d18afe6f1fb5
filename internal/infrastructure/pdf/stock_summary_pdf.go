// Package pdf genera el reporte de resumen de stock en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Qtd. | Preço Unit. | Valor Total │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: unidades / valor total del estoque                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/estoque-api/internal/domain/dashboard"
	"github.com/jhoicas/estoque-api/pkg/money"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoStockReport implementa analytics.StockReportGenerator usando Maroto v2.
type MarotoStockReport struct {
	title string
}

// NewMarotoStockReport construye el generador. title vacío usa "Resumo de Estoque".
func NewMarotoStockReport(title string) *MarotoStockReport {
	if title == "" {
		title = "Resumo de Estoque"
	}
	return &MarotoStockReport{title: title}
}

// GenerateStockSummaryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockSummaryPDF(
	_ context.Context,
	rows []dashboard.SummaryRow,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(title string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 1, align.Center),
		h("Produto", 5, align.Left),
		h("Qtd.", 2, align.Right),
		h("Preço Unit.", 2, align.Right),
		h("Valor Total", 2, align.Right),
	)
}

func tableRows(rows []dashboard.SummaryRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.FormatInt(r.ProductID, 10),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(r.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.FormatInt(r.Quantity, 10),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatBRL(r.UnitPriceCents),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatBRL(r.TotalCents),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(rows []dashboard.SummaryRow) core.Row {
	var units, cents int64
	for _, r := range rows {
		units += r.Quantity
		cents += r.TotalCents
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Right: 1})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(label("Unidades:"), label("Valor em estoque:")),
		col.New(3).Add(value(strconv.FormatInt(units, 10)), value(formatBRL(cents))),
	)
}

// formatBRL formatea centavos como moneda brasileña. Ej: 123456 → "R$ 1.234,56".
func formatBRL(cents int64) string {
	s := money.FromCents(cents).StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	out := "R$ " + groupThousands(intPart) + "," + frac
	if neg {
		return "-" + out
	}
	return out
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
