// Package pdf renderiza el tablero de ventas como reporte PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período/wilaya │ Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Ingresos | Unidades | Transacciones | Cesta media    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ingresos por wilaya                                 │
//	│  TABLA: Top productos                                       │
//	│  TABLA: Ingresos por categoría                              │
//	│  TABLA: Evolución mensual + tendencia                       │
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

	"github.com/jhoicas/boutique-analytics/internal/application/analytics"
	"github.com/jhoicas/boutique-analytics/internal/application/dto"
	"github.com/jhoicas/boutique-analytics/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorWarn    = &props.Color{Red: 180, Green: 90, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ analytics.DashboardPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.DashboardPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	money *money.Formatter
}

// NewMarotoReportGenerator construye el generador con el formateador de importes del tablero.
func NewMarotoReportGenerator(formatter *money.Formatter) *MarotoReportGenerator {
	return &MarotoReportGenerator{money: formatter}
}

// GenerateDashboardPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDashboardPDF(
	_ context.Context,
	d *dto.DashboardDTO,
	meta analytics.ReportMeta,
) ([]byte, error) {
	if d == nil {
		return nil, fmt.Errorf("pdf: tablero nulo")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(meta.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(d, meta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if d.Stale {
		m.AddRows(noticeRow(d.Notice))
	}
	m.AddRows(g.kpiRow(d.KPIs))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(g.labelValueSection("Chiffre d'affaires par wilaya", "Wilaya", d.RevenueByRegion)...)
	m.AddRows(g.labelValueSection("Top produits", "Produit", d.TopProducts)...)
	m.AddRows(g.labelValueSection("Chiffre d'affaires par catégorie", "Catégorie", d.RevenueByCategory)...)
	m.AddRows(g.monthlySection(d.Monthly)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + filtros aplicados (izq) y fecha de generación (der).
func (g *MarotoReportGenerator) headerRow(d *dto.DashboardDTO, meta analytics.ReportMeta) core.Row {
	region := d.Region
	if region == "" {
		region = nonEmpty(d.Filters.AllRegions, "Toutes")
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New(meta.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Période: %s → %s   |   Wilaya: %s",
				nonEmpty(d.Period.DateFrom, "—"), nonEmpty(d.Period.DateTo, "—"), region,
			), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Généré le", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(meta.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func noticeRow(notice string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(nonEmpty(notice, "Données possiblement obsolètes"), props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWarn, Top: 2,
		}),
	))
}

// kpiRow: cuatro tarjetas con los indicadores principales.
func (g *MarotoReportGenerator) kpiRow(k dto.KPIsDTO) core.Row {
	card := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 2}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: colorPrimary, Top: 8,
			}),
		)
	}
	return row.New(18).Add(
		card("Chiffre d'affaires", g.money.Amount(k.Revenue)),
		card("Quantité vendue", g.money.Units(k.Quantity, "")),
		card("Transactions", g.money.Units(k.TransactionCount, "")),
		card("Panier moyen", g.money.Amount(k.AverageBasket)),
	)
}

// labelValueSection: título + tabla de dos columnas (etiqueta, ingreso).
func (g *MarotoReportGenerator) labelValueSection(title, labelHeader string, items []dto.LabelValueDTO) []core.Row {
	rows := []core.Row{
		sectionTitleRow(title),
		tableHeaderRow(labelHeader, "Chiffre d'affaires"),
	}
	if len(items) == 0 {
		return append(rows, emptyRow())
	}
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(text.New(it.Label, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(g.money.Amount(it.Revenue), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}

// monthlySection: serie mensual con la media móvil como tercera columna.
func (g *MarotoReportGenerator) monthlySection(points []dto.MonthlyPointDTO) []core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		}))
	}
	rows := []core.Row{
		sectionTitleRow("Évolution mensuelle"),
		row.New(7).Add(
			h("Mois", 4, align.Left),
			h("Chiffre d'affaires", 4, align.Right),
			h("Tendance", 4, align.Right),
		).WithStyle(&props.Cell{BackgroundColor: colorPrimary}),
	}
	if len(points) == 0 {
		return append(rows, emptyRow())
	}
	for _, p := range points {
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(p.YearMonth, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(g.money.Amount(p.Revenue), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(4).Add(text.New(g.money.Amount(p.Trend), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray,
			})),
		))
	}
	return rows
}

func sectionTitleRow(title string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 4}),
	))
}

// tableHeaderRow: cabecera de tabla de dos columnas sobre fondo primario.
func tableHeaderRow(left, right string) core.Row {
	return row.New(7).Add(
		col.New(8).Add(text.New(left, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1.5, Left: 1,
		})),
		col.New(4).Add(text.New(right, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorWhite, Top: 1.5, Right: 1,
		})),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func emptyRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Aucune vente sur la période", props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 1,
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
