// Package pdf dibuja los reportes de inventario con Maroto v2.
//
// Layout común de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO centrado                                            │
//	│                         Fecha de generación: dd/mm/aaaa hh:mm│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: cabecera (52,73,94) + filas alternas                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN                                                     │
//	│                                   Página N de M              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/inventario-system/internal/application/report"
	"github.com/jhoicas/inventario-system/internal/domain/entity"
)

var _ report.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorHeader    = &props.Color{Red: 52, Green: 73, Blue: 94}
	colorWarning   = &props.Color{Red: 231, Green: 76, Blue: 60}
	colorNormal    = &props.Color{Red: 46, Green: 204, Blue: 113}
	colorAlternate = &props.Color{Red: 245, Green: 245, Blue: 245}
	colorGray      = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDarkGray  = &props.Color{Red: 64, Green: 64, Blue: 64}
	colorWhite     = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const descriptionMaxLen = 30

// column cabecera y ancho (grilla de 12) de una columna de la tabla.
type column struct {
	label string
	size  int
}

var (
	lowStockColumns = []column{
		{"Nombre", 3}, {"Categoría", 2}, {"Precio", 2}, {"Cantidad", 1}, {"Estado", 2}, {"Fecha", 2},
	}
	inventoryColumns = []column{
		{"Nombre", 2}, {"Descripción", 3}, {"Categoría", 2}, {"Precio", 2}, {"Cantidad", 1}, {"Estado", 1}, {"Fecha", 1},
	}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	moneyTag language.Tag
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{moneyTag: language.AmericanEnglish}
}

// LowStockPDF tabla de productos con inventario bajo; la cantidad siempre va resaltada.
func (g *MarotoPDFGenerator) LowStockPDF(_ context.Context, products []*entity.Product, generatedAt time.Time) ([]byte, error) {
	m := newDocument("Reporte de Productos con Inventario Bajo")

	m.AddRows(titleRows("Reporte de Productos con Inventario Bajo", generatedAt)...)
	m.AddRows(tableHeaderRow(lowStockColumns))
	for i, p := range products {
		bg := rowBackground(i)
		m.AddRows(row.New(8).Add(
			cell(lowStockColumns[0].size, p.Name, bg, align.Left),
			cell(lowStockColumns[1].size, p.Category, bg, align.Left),
			cell(lowStockColumns[2].size, g.formatMoney(p.Price), bg, align.Right),
			cell(lowStockColumns[3].size, fmt.Sprintf("%d", p.Quantity), colorWarning, align.Center),
			cell(lowStockColumns[4].size, "Bajo", bg, align.Center),
			cell(lowStockColumns[5].size, p.CreatedAt.Format("02/01/2006"), bg, align.Center),
		))
	}

	m.AddRows(line.NewRow(6))
	m.AddRows(summaryRow(fmt.Sprintf("Total de productos con inventario bajo: %d", len(products)), true))

	return generate(m)
}

// InventoryPDF tabla de todos los productos activos más el resumen de totales.
func (g *MarotoPDFGenerator) InventoryPDF(_ context.Context, products []*entity.Product, summary report.InventorySummary, generatedAt time.Time) ([]byte, error) {
	m := newDocument("Reporte General de Inventario")

	m.AddRows(titleRows("Reporte General de Inventario", generatedAt)...)
	m.AddRows(tableHeaderRow(inventoryColumns))
	for i, p := range products {
		bg := rowBackground(i)
		qtyBg, status, statusBg := bg, "Normal", colorNormal
		if p.IsLowStock() {
			qtyBg, status, statusBg = colorWarning, "Bajo", colorWarning
		}
		m.AddRows(row.New(8).Add(
			cell(inventoryColumns[0].size, p.Name, bg, align.Left),
			cell(inventoryColumns[1].size, truncate(p.Description, descriptionMaxLen), bg, align.Left),
			cell(inventoryColumns[2].size, p.Category, bg, align.Left),
			cell(inventoryColumns[3].size, g.formatMoney(p.Price), bg, align.Right),
			cell(inventoryColumns[4].size, fmt.Sprintf("%d", p.Quantity), qtyBg, align.Center),
			cell(inventoryColumns[5].size, status, statusBg, align.Center),
			cell(inventoryColumns[6].size, p.CreatedAt.Format("02/01/2006"), bg, align.Center),
		))
	}

	m.AddRows(line.NewRow(6))
	m.AddRows(summaryRow("Resumen:", true))
	m.AddRows(summaryRow(fmt.Sprintf("Total de productos: %d", summary.TotalProducts), false))
	m.AddRows(summaryRow(fmt.Sprintf("Productos con inventario bajo: %d", summary.LowStockCount), false))
	m.AddRows(summaryRow("Valor total del inventario: "+g.formatMoney(summary.TotalValue), false))

	return generate(m)
}

// newDocument A4 con numeración "Página N de M" al pie.
func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(9).WithRightMargin(9).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor("Inventario System", true).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.Bottom,
			Size:    8,
			Color:   colorGray,
		}).
		Build()
	return maroto.New(cfg)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// titleRows: título centrado y fecha de generación a la derecha.
func titleRows(title string, at time.Time) []core.Row {
	return []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center, Color: colorDarkGray, Top: 2,
			}),
		)),
		row.New(10).Add(col.New(12).Add(
			text.New("Fecha de generación: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Color: colorGray, Top: 3,
			}),
		)),
		line.NewRow(2, props.Line{Color: colorHeader, Thickness: 0.4}),
	}
}

// tableHeaderRow: fondo (52,73,94) con texto blanco.
func tableHeaderRow(cols []column) core.Row {
	r := row.New(9)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center,
			Color: colorWhite, Top: 2.5,
		})))
	}
	return r.WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

func cell(size int, value string, bg *props.Color, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
	})).WithStyle(&props.Cell{BackgroundColor: bg})
}

func summaryRow(s string, bold bool) core.Row {
	p := props.Text{Size: 9, Top: 1}
	if bold {
		p = props.Text{Style: fontstyle.Bold, Size: 11, Color: colorDarkGray, Top: 1}
	}
	return row.New(7).Add(col.New(12).Add(text.New(s, p)))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func rowBackground(i int) *props.Color {
	if i%2 == 0 {
		return colorWhite
	}
	return colorAlternate
}

// formatMoney precio con separador de miles y dos decimales. Ej: 12999 → "$12,999.00".
func (g *MarotoPDFGenerator) formatMoney(d decimal.Decimal) string {
	return message.NewPrinter(g.moneyTag).Sprintf("$%.2f", d.Round(2).InexactFloat64())
}

// truncate corta a max runas dejando "..." al final si el texto no cabe.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
