// Package pdf genera el informe imprimible de una simulación de cadena.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha      │  referencia del informe      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: precio final / sugerido / impuestos / utilidad     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA CADENA: Participante | Venta s/IVA | c/IVA | ...      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESTRUCTURA DEL INGRESO DE LA PLATAFORMA                     │
//	│  ALERTAS Y RECOMENDACIONES                                   │
//	│  FOOTER: QR con la referencia + leyenda                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/tradechain-api/internal/application/dto"
	"github.com/jhoicas/tradechain-api/internal/application/report"
	"github.com/jhoicas/tradechain-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarning = &props.Color{Red: 180, Green: 60, Blue: 0}
	colorHeader  = &props.Color{Red: 225, Green: 233, Blue: 242}
)

var roleLabels = map[string]string{
	"source":   "Origen",
	"funder":   "Financiador",
	"platform": "Plataforma",
	"trader":   "Comercializador",
	"retailer": "Minorista",
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.SummaryPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa report.SummaryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateSummaryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSummaryPDF(_ context.Context, s report.Summary) ([]byte, error) {
	if s.Simulation == nil {
		return nil, fmt.Errorf("pdf: simulación vacía")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Simulación de cadena comercial", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(s.Simulation.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("CADENA DE VALOR"))
	m.AddRows(chainHeaderRow())
	m.AddRows(chainRows(s.Simulation)...)

	if s.Structure != nil && len(s.Structure.Items) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(sectionTitle("ESTRUCTURA DEL INGRESO DE LA PLATAFORMA"))
		m.AddRows(structureRows(s.Structure)...)
	}

	if rows := adviceRows(s.Simulation); len(rows) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(sectionTitle("ALERTAS Y RECOMENDACIONES"))
		m.AddRows(rows...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(s.ReferenceID))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(s report.Summary) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("SIMULACIÓN DE CADENA COMERCIAL", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+s.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REFERENCIA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(s.ReferenceID, props.Text{
				Size: 7, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func summaryRow(sum dto.ChainSummary) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6, Align: align.Center}),
		)
	}
	return row.New(16).Add(
		cell("Precio al consumidor", money.Format(sum.ConsumerPriceIncl, 2)),
		cell("Precio sugerido", money.Format(sum.PackageMSRP, 2)),
		cell("Impuestos de la cadena", money.Format(sum.TotalTax, 2)),
		cell("Utilidad neta total", money.Format(sum.TotalNetProfit, 2)),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}),
	))
}

func chainHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorHeader}).Add(
		h("Participante", 3, align.Left),
		h("Venta s/IVA", 2, align.Right),
		h("Venta c/IVA", 2, align.Right),
		h("IVA a pagar", 1, align.Right),
		h("Imp. netos", 2, align.Right),
		h("Utilidad neta", 2, align.Right),
	)
}

func chainRows(sim *dto.SimulationResponse) []core.Row {
	chain := []dto.EntityResultResponse{sim.Source, sim.Funder, sim.Platform}
	if sim.Trader != nil {
		chain = append(chain, *sim.Trader)
	}
	chain = append(chain, sim.Retailer)

	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	rows := make([]core.Row, 0, len(chain))
	for _, e := range chain {
		name := roleLabels[e.Role]
		if e.Name != "" {
			name += ": " + e.Name
		}
		netTax := e.TotalTax.Sub(e.TaxRefunds)
		rows = append(rows, row.New(7).Add(
			cell(name, 3, align.Left),
			cell(money.Format(e.RevenueExcl, 2), 2, align.Right),
			cell(money.Format(e.RevenueIncl, 2), 2, align.Right),
			cell(money.Format(e.VATPayable, 2), 1, align.Right),
			cell(money.Format(netTax, 2), 2, align.Right),
			cell(money.Format(e.NetProfit, 2), 2, align.Right),
		))
	}
	return rows
}

func structureRows(st *dto.CostStructureResponse) []core.Row {
	rows := make([]core.Row, 0, len(st.Items))
	for _, it := range st.Items {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(it.Label, props.Text{Size: 8, Left: 2, Top: 1})),
			col.New(3).Add(text.New(money.Format(it.Value, 2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(it.Share.StringFixed(2)+"%", props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	rows = append(rows, row.New(6).Add(
		col.New(6).Add(text.New("Ingreso con IVA", props.Text{Style: fontstyle.Bold, Size: 8, Left: 2, Top: 1})),
		col.New(3).Add(text.New(money.Format(st.RevenueIncl, 2), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New(decimal.NewFromInt(100).StringFixed(2)+"%", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1})),
	))
	return rows
}

func adviceRows(sim *dto.SimulationResponse) []core.Row {
	var rows []core.Row
	for _, w := range sim.Warnings {
		rows = append(rows, bulletRow("! "+w, colorWarning))
	}
	for _, tip := range sim.Platform.ComplianceTips {
		rows = append(rows, bulletRow("- "+tip, colorGray))
	}
	return rows
}

func bulletRow(s string, color *props.Color) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 8, Color: color, Left: 2, Top: 1}),
	))
}

func footerRow(reference string) core.Row {
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(reference, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Cifras estimadas con las tasas y plazos configurados.", props.Text{
				Size: 8, Top: 6, Left: 3, Color: colorGray,
			}),
			text.New("No sustituye la liquidación tributaria oficial.", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 14, Left: 3, Color: colorPrimary,
			}),
		),
	)
}
