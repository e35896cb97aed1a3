// Package pdf implementa la generación del documento de cotización con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: COTIZACIÓN  │  N° Cotización + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre / Empresa / Email / Teléfono (opcional)    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | Unidad | P.Unit | Subtotal     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: TOTAL                                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: vigencia + nota                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoQuoteGenerator implementa quote.QuotePDFGenerator usando Maroto v2.
type MarotoQuoteGenerator struct {
	fmtr         *money.Formatter
	validityDays int
}

// NewMarotoQuoteGenerator construye el generador con el formateador de montos
// y la vigencia declarada en el pie del documento.
func NewMarotoQuoteGenerator(fmtr *money.Formatter, validityDays int) *MarotoQuoteGenerator {
	return &MarotoQuoteGenerator{fmtr: fmtr, validityDays: validityDays}
}

// GenerateQuotePDF genera el PDF y devuelve sus bytes.
func (g *MarotoQuoteGenerator) GenerateQuotePDF(_ context.Context, q *entity.Quote) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+q.Number, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(q))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if hasCustomer(q.Customer) {
		m.AddRows(customerRow(q.Customer))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(tableHeaderRow())
	for _, r := range g.tableItemRows(q.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalRow(q))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.footerRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título COTIZACIÓN (izq) y número + fecha (der).
func headerRow(q *entity.Quote) core.Row {
	fecha := q.Date.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New(q.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente (solo si se entregaron).
func customerRow(c entity.CustomerInfo) core.Row {
	nombre := nonEmpty(c.Name, c.Company)
	if c.Name != "" && c.Company != "" {
		nombre = c.Name + " - " + c.Company
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(nombre, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s",
				nonEmpty(c.Email, "—"),
				nonEmpty(c.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 5, align.Left),
		h("Unidad", 2, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableItemRows: una fila por línea de la cotización.
func (g *MarotoQuoteGenerator) tableItemRows(items []entity.QuoteItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		desc := it.Product.Name
		if it.Product.Description != "" {
			desc = it.Product.Name + " - " + it.Product.Description
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				desc,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				it.Product.Unit,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				g.fmtr.Format(it.Product.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				g.fmtr.Format(it.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total general alineado a la derecha.
func (g *MarotoQuoteGenerator) totalRow(q *entity.Quote) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 3, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New(g.fmtr.Format(q.Total), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 3, Right: 1,
			}),
		),
	)
}

// footerRows: vigencia y nota final.
func (g *MarotoQuoteGenerator) footerRows() []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Cotización válida por %d días desde su fecha de emisión.", g.validityDays),
				props.Text{Size: 7.5, Color: colorGray, Top: 1}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("Precios expresados en pesos. No incluye despacho salvo indicación expresa.",
				props.Text{Size: 7.5, Color: colorGray, Top: 1}),
		)),
	}
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func hasCustomer(c entity.CustomerInfo) bool {
	return c.Name != "" || c.Email != "" || c.Phone != "" || c.Company != ""
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
