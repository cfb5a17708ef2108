// Package pdf genera el catálogo de productos exportable desde el panel de administración.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + filtro de categoría │ Fecha + total       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Tienda | Rating | Precio      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: cantidad de productos                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/mallofcayman/catalog-api/internal/application/ports"
)

var _ ports.CatalogPDFGenerator = (*MarotoCatalogGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoCatalogGenerator implementa ports.CatalogPDFGenerator usando Maroto v2.
type MarotoCatalogGenerator struct {
	author string
}

// NewMarotoCatalogGenerator construye el generador; author va en los metadatos del PDF.
func NewMarotoCatalogGenerator(author string) *MarotoCatalogGenerator {
	return &MarotoCatalogGenerator{author: author}
}

// GenerateCatalogPDF genera el PDF y devuelve sus bytes.
func (g *MarotoCatalogGenerator) GenerateCatalogPDF(_ context.Context, export ports.CatalogExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(export.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(export))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	if len(export.Products) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin productos para los filtros seleccionados.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	m.AddRows(productRows(export)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(export.Products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar catálogo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(export ports.CatalogExport) core.Row {
	filter := "Todas las categorías"
	if export.Category != "" {
		filter = "Categoría: " + export.Category
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(export.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(filter, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+export.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d productos", len(export.Products)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("Categoría", 3, align.Left),
		h("Tienda", 1, align.Left),
		h("Rating", 1, align.Center),
		h("Precio", 2, align.Right),
	)
}

// productRows una fila por producto, en el orden ya filtrado y ordenado.
func productRows(export ports.CatalogExport) []core.Row {
	rows := make([]core.Row, 0, len(export.Products))
	for i, p := range export.Products {
		if p == nil {
			continue
		}
		r := row.New(7).Add(
			col.New(5).Add(text.New(truncate(p.Name, 60),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(nonEmpty(export.CategoryLabel(p), "-"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(nonEmpty(p.StoreID, "-"),
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(p.Rating.StringFixed(1),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatPrice(p.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		rows = append(rows, r)
	}
	return rows
}

func footerRow(count int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Mall of Cayman · %d productos listados. Precios en CI$.", count), props.Text{
			Size: 7, Color: colorGray, Top: 2, Align: align.Center,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatPrice "$1,234.50".
func formatPrice(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + "$" + groupThousands(whole) + "." + frac
}

// groupThousands inserta comas de miles en un entero sin signo. Ej: "1000000" → "1,000,000".
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// truncate corta por runas para no partir caracteres multibyte.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
