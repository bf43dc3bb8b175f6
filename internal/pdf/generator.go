package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/obras-portal/internal/geomap"
	"github.com/nurpe/obras-portal/internal/model"
)

const (
	fontName = "Helvetica"
	// mmPerPx maps canvas pixels onto millimetre pages at 96 dpi.
	mmPerPx = 25.4 / 96
)

var locationViewport = geomap.Viewport{Width: 640, Height: 240}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// ProjectSheet renders the public data sheet of a project: header, official
// data, location map, milestones, the calendar month and the update timeline.
func (g *Generator) ProjectSheet(project model.Project, cal model.Calendar) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(project.Name, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont(fontName, "B", 15)
	pdf.MultiCell(0, 7, tr(project.Name), "", "L", false)
	pdf.SetFont(fontName, "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s - %s, %s", project.Location, project.City, project.District)), "", 1, "L", false, 0, "")

	color := geomap.StatusColor(project.Status)
	pdf.SetTextColor(int(color.R), int(color.G), int(color.B))
	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("%s - %d%%", project.Status.Label(), project.Progress)), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	drawProgressBar(pdf, project.Progress, color)
	pdf.Ln(4)

	addInfoBlock(pdf, tr, "Dados oficiais", [][2]string{
		{"Empresa", project.Contractor},
		{"Contrato", project.ContractID},
		{"Orcamento", project.Budget},
		{"Categoria", project.Category},
		{"Inicio", formatDate(project.StartDate)},
		{"Previsao de termino", formatDate(project.ExpectedEndDate)},
		{"Ultima atualizacao", formatDate(project.LastUpdate)},
	})
	pdf.Ln(3)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, tr("Localizacao"), "", 1, "L", false, 0, "")
	top := pdf.GetY()
	canvas := NewMapCanvas(pdf, 15, top, mmPerPx)
	canvas.Reset(locationViewport)
	geomap.Replay(geomap.LocationScene(locationViewport), canvas)
	canvas.Close()
	pdf.SetY(top + locationViewport.Height*mmPerPx + 4)

	if len(project.Milestones) > 0 {
		pdf.SetFont(fontName, "B", 12)
		pdf.CellFormat(0, 8, tr("Marcos"), "", 1, "L", false, 0, "")
		widths := []float64{100, 40, 40}
		drawTableRow(pdf, tr, []string{"Marco", "Data", "Situacao"}, widths, true)
		for _, ms := range project.Milestones {
			state := "Previsto"
			if ms.Completed {
				state = "Concluido"
			}
			drawTableRow(pdf, tr, []string{ms.Label, formatDate(ms.Date), state}, widths, false)
		}
		pdf.Ln(3)
	}

	if len(cal.Days) > 0 {
		pdf.SetFont(fontName, "B", 12)
		pdf.CellFormat(0, 8, tr("Calendario "+cal.Month), "", 1, "L", false, 0, "")
		pdf.SetFont(fontName, "", 10)
		for _, day := range cal.Days {
			labels := make([]string, 0, len(day.Entries))
			for _, e := range day.Entries {
				labels = append(labels, e.Label)
			}
			line := fmt.Sprintf("%s  [%s]  %s", formatDate(day.Date), day.Indicator, strings.Join(labels, "; "))
			pdf.MultiCell(0, 5, tr(line), "", "L", false)
		}
		pdf.Ln(3)
	}

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, tr("Atualizacoes"), "", 1, "L", false, 0, "")
	if len(project.Updates) == 0 {
		pdf.SetFont(fontName, "", 10)
		pdf.CellFormat(0, 6, tr("Nenhuma atualizacao registrada."), "", 1, "L", false, 0, "")
	}
	for _, u := range project.Updates {
		pdf.SetFont(fontName, "B", 10)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s - %s", formatDate(u.Date), u.Title)), "", 1, "L", false, 0, "")
		pdf.SetFont(fontName, "", 10)
		if u.Description != "" {
			pdf.MultiCell(0, 5, tr(u.Description), "", "L", false)
		}
		pdf.SetTextColor(100, 116, 139)
		pdf.CellFormat(0, 5, tr(safeValue(u.Author)), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	return output(pdf)
}

// Map renders one frame of the project map on a page sized to the viewport,
// with a title band above it.
func (g *Generator) Map(state geomap.State, title string) ([]byte, error) {
	if state.Viewport.Empty() {
		return nil, fmt.Errorf("empty viewport")
	}
	const header = 28.0

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size: gofpdf.SizeType{
			Wd: state.Viewport.Width * pxToPt,
			Ht: state.Viewport.Height*pxToPt + header,
		},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont(fontName, "B", 11)
	pdf.SetXY(8, 6)
	pdf.CellFormat(0, 16, tr(title), "", 0, "L", false, 0, "")
	pdf.SetFont(fontName, "", 9)
	count := fmt.Sprintf("%d obras no mapa", len(state.Projects))
	if len(state.Projects) == 1 {
		count = "1 obra no mapa"
	}
	pdf.SetXY(0, 6)
	pdf.CellFormat(state.Viewport.Width*pxToPt-8, 16, tr(count), "", 0, "R", false, 0, "")

	canvas := NewMapCanvas(pdf, 0, header, pxToPt)
	geomap.NewMap(canvas, state)
	canvas.Close()

	return output(pdf)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawProgressBar(pdf *gofpdf.Fpdf, progress int, color geomap.Color) {
	const width = 120.0
	x, y := pdf.GetX(), pdf.GetY()
	pdf.SetFillColor(226, 232, 240)
	pdf.Rect(x, y, width, 2.5, "F")
	pdf.SetFillColor(int(color.R), int(color.G), int(color.B))
	pdf.Rect(x, y, width*float64(progress)/100, 2.5, "F")
	pdf.SetY(y + 2.5)
}

func addInfoBlock(pdf *gofpdf.Fpdf, tr func(string) string, title string, rows [][2]string) {
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	for _, row := range rows {
		pdf.SetFont(fontName, "B", 10)
		pdf.CellFormat(50, 6, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.SetFont(fontName, "", 10)
		pdf.CellFormat(0, 6, tr(safeValue(row[1])), "", 1, "L", false, 0, "")
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 7, tr(col), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

// formatDate renders YYYY-MM-DD as DD/MM/YYYY.
func formatDate(raw string) string {
	t, ok := model.ParseDate(raw)
	if !ok {
		return safeValue(raw)
	}
	return t.Format("02/01/2006")
}
