// Package pdf genera la exportación PDF del informe diario de obra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Proyecto + Cliente   │  INFORME DIARIO + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: Responsable / Clima / Personal en obra               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIONES: Actividades / Novedades / Observaciones          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con la referencia del informe                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

	"github.com/jhoicas/obra-admin/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// caracteres por línea de texto a tamaño 9 en el ancho útil de A4.
const charsPerLine = 95

// MarotoReportGenerator genera el PDF del informe diario con Maroto v2.
type MarotoReportGenerator struct {
	company string
}

// NewMarotoReportGenerator construye el generador. company aparece como autor del documento.
func NewMarotoReportGenerator(company string) *MarotoReportGenerator {
	return &MarotoReportGenerator{company: company}
}

// GenerateDailyReportPDF genera el PDF y devuelve sus bytes. project puede ser nil.
func (g *MarotoReportGenerator) GenerateDailyReportPDF(
	_ context.Context,
	report *entity.DailyReport,
	project *entity.Project,
) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: informe nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe diario de obra", true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, project))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(detailsRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRows("ACTIVIDADES EJECUTADAS", report.Activities)...)
	if report.Incidents != "" {
		m.AddRows(sectionRows("NOVEDADES E INCIDENTES", report.Incidents)...)
	}
	if report.Observations != "" {
		m.AddRows(sectionRows("OBSERVACIONES", report.Observations)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: proyecto + cliente (izq) y título + fecha (der).
func headerRow(report *entity.DailyReport, project *entity.Project) core.Row {
	name, client := report.ProjectID, ""
	if project != nil {
		name = nonEmpty(project.Name, report.ProjectID)
		client = project.Client
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(client, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INFORME DIARIO DE OBRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+reportDate(report), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
		),
	)
}

// detailsRow: responsable, clima y personal.
func detailsRow(report *entity.DailyReport) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Size: 9, Style: fontstyle.Bold, Top: 5}),
		)
	}
	return row.New(12).Add(
		cell("Responsable", nonEmpty(report.Author, "-")),
		cell("Clima", nonEmpty(report.Weather, "-")),
		cell("Personal en obra", strconv.Itoa(report.Workers)),
	)
}

// sectionRows: barra de título y el cuerpo con alto según la cantidad de líneas.
func sectionRows(title, body string) []core.Row {
	titleRow := row.New(7).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1.5, Left: 2,
	}))).WithStyle(&props.Cell{BackgroundColor: colorPrimary})

	rows := []core.Row{titleRow}
	for _, p := range strings.Split(strings.TrimSpace(body), "\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		lines := len([]rune(p))/charsPerLine + 1
		rows = append(rows, row.New(float64(lines)*4+2).Add(col.New(12).Add(
			text.New(p, props.Text{Size: 9, Top: 1, Left: 2, Right: 2}),
		)))
	}
	return append(rows, line.NewRow(3))
}

// footerRow: QR con la referencia del informe.
func footerRow(report *entity.DailyReport) core.Row {
	ref := "informe:" + nonEmpty(report.ID, "sin-id")
	return row.New(28).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{
			Center: true, Percent: 90,
		})),
		col.New(9).Add(
			text.New("Referencia: "+ref, props.Text{Size: 7, Color: colorGray, Top: 4}),
			text.New("Documento generado desde el panel de administración de obra.", props.Text{
				Size: 7, Color: colorGray, Top: 10,
			}),
		),
	)
}

func reportDate(report *entity.DailyReport) string {
	if report.Date == nil {
		return "-"
	}
	return report.Date.Format("02/01/2006")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
