// Package pdf genera el reporte mensual del restaurante en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio   │  Relatório mensal + mes     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Receitas / Despesas / Folha / Vales / Lucro       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESPESAS POR CATEGORIA  (categoría | cant | total)         │
//	│  RECEITAS POR FONTE      (fuente | cant | total)            │
//	│  FUNCIONÁRIOS (nombre | salario | vales | líquido | pago)   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                │
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

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 140, Green: 45, Blue: 25}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 30, Green: 120, Blue: 60}
)

var _ ports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportPDFGenerator con Maroto v2.
type MarotoReportGenerator struct {
	printer *message.Printer
	now     func() time.Time
}

// NewMarotoReportGenerator construye el generador; los valores salen en formato pt-BR.
func NewMarotoReportGenerator(now func() time.Time) *MarotoReportGenerator {
	if now == nil {
		now = time.Now
	}
	return &MarotoReportGenerator{
		printer: message.NewPrinter(language.BrazilianPortuguese),
		now:     now,
	}
}

// GenerateMonthlyReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMonthlyReport(_ context.Context, r ports.MonthlyReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório mensal "+r.Overview.Month, true).
		WithAuthor(r.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.overviewRows(r.Overview)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(g.groupRows("DESPESAS POR CATEGORIA", "Categoria", r.Expenses)...)
	m.AddRows(row.New(4))
	m.AddRows(g.groupRows("RECEITAS POR FONTE", "Fonte", r.Revenues)...)
	m.AddRows(row.New(4))
	m.AddRows(g.employeeRows(r.Employees)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Gerado em "+g.now().Format("02/01/2006 15:04"), props.Text{
			Size: 7, Color: colorGray, Align: align.Right, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) headerRow(r ports.MonthlyReport) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(r.BusinessName, "Restaurante"), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("RELATÓRIO MENSAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(monthLabel(r.Overview.Month), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

func (g *MarotoReportGenerator) overviewRows(o dto.OverviewReport) []core.Row {
	total := func(label string, t dto.TotalResponse) core.Row {
		return row.New(6).Add(
			col.New(6).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", t.Count), props.Text{Size: 9, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(g.money(t.Total), props.Text{Size: 9, Align: align.Right, Top: 1})),
		)
	}

	profitColor := colorGreen
	if o.Profit.IsNegative() {
		profitColor = colorPrimary
	}
	return []core.Row{
		sectionTitle("RESUMO"),
		total("Receitas", o.Revenue),
		total("Despesas", o.Expenses),
		total("Folha de pagamento", o.Payroll),
		total("Vales pagos", o.Advances),
		row.New(7).Add(
			col.New(6).Add(text.New(fmt.Sprintf("Funcionários ativos: %d", o.Employees), props.Text{Size: 8, Color: colorGray, Top: 2})),
			col.New(2).Add(text.New("Lucro", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(g.money(o.Profit), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: profitColor, Top: 1,
			})),
		),
	}
}

func (g *MarotoReportGenerator) groupRows(title, keyLabel string, groups []dto.GroupTotalResponse) []core.Row {
	rows := []core.Row{
		sectionTitle(title),
		row.New(6).Add(
			col.New(6).Add(tableHead(keyLabel, align.Left)),
			col.New(2).Add(tableHead("Qtd.", align.Center)),
			col.New(4).Add(tableHead("Total", align.Right)),
		),
	}
	if len(groups) == 0 {
		return append(rows, emptyRow())
	}
	for _, gr := range groups {
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(gr.Key, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", gr.Count), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(g.money(gr.Total), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func (g *MarotoReportGenerator) employeeRows(list []dto.EmployeeReportRow) []core.Row {
	rows := []core.Row{
		sectionTitle("FUNCIONÁRIOS"),
		row.New(6).Add(
			col.New(4).Add(tableHead("Nome", align.Left)),
			col.New(2).Add(tableHead("Salário", align.Right)),
			col.New(2).Add(tableHead("Vales", align.Right)),
			col.New(2).Add(tableHead("Líquido", align.Right)),
			col.New(2).Add(tableHead("Pago", align.Center)),
		),
	}
	if len(list) == 0 {
		return append(rows, emptyRow())
	}
	for _, e := range list {
		net, paid := "—", "—"
		if e.Payroll != nil {
			net = g.money(e.Payroll.NetSalary)
			paid = "Não"
			if e.Payroll.Paid {
				paid = "Sim"
			}
		}
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(e.Name+" ("+e.Role+")", props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(g.money(e.Salary), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(g.money(e.Advances), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(net, props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(paid, props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(text.New(s, props.Text{
		Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
	})))
}

func tableHead(s string, a align.Type) core.Component {
	return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 1})
}

func emptyRow() core.Row {
	return row.New(5).Add(col.New(12).Add(text.New("Sem registros no período.", props.Text{
		Size: 8, Color: colorGray, Top: 1,
	})))
}

// money formatea en reales: 1234.5 → "R$ 1.234,50".
func (g *MarotoReportGenerator) money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return g.printer.Sprintf("R$ %.2f", f)
}

// monthLabel "2024-03" → "03/2024"; si no parsea se devuelve tal cual.
func monthLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("01/2006")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
