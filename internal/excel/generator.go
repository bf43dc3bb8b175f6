package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/obras-portal/internal/model"
)

const maxSheetName = 31

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Dashboard writes the admin dashboard: a summary sheet followed by the
// district, deadline and update sheets.
func (g *Generator) Dashboard(d model.Dashboard) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	summarySheet := "Resumo"
	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	g.writeSummary(file, summarySheet, d)

	sheets := []struct {
		name  string
		write func(*excelize.File, string, model.Dashboard)
	}{
		{"Regioes", g.writeDistricts},
		{"Prazos", g.writeDeadlines},
		{"Atualizacoes", g.writeUpdates},
	}
	for _, sheet := range sheets {
		if _, err := file.NewSheet(sheet.name); err != nil {
			return nil, err
		}
		sheet.write(file, sheet.name, d)
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Projects writes one row per project on the first sheet plus one sheet per
// district.
func (g *Generator) Projects(list []model.Project) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	allSheet := "Obras"
	if err := file.SetSheetName("Sheet1", allSheet); err != nil {
		return nil, err
	}
	g.writeProjectTable(file, allSheet, list)

	usedNames := map[string]struct{}{allSheet: {}}
	for _, group := range groupByDistrict(list) {
		sheetName := buildSheetName(group.district, usedNames)
		usedNames[sheetName] = struct{}{}

		if _, err := file.NewSheet(sheetName); err != nil {
			return nil, err
		}
		g.writeProjectTable(file, sheetName, group.projects)
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, d model.Dashboard) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	rows := []struct {
		label string
		value interface{}
	}{
		{"Data de referencia", d.Date},
		{"Total de obras", d.Totals.Total},
		{"Em andamento", d.Totals.Active},
		{"Concluidas", d.Totals.Completed},
		{"Atrasadas", d.Totals.Delayed},
		{"Planejadas", d.Totals.Planned},
		{"Suspensas", d.Totals.OnHold},
		{"Usuarios ativos", d.Totals.ActiveUsers},
		{"Sem atualizacao 5-9 dias", len(d.Staleness.Days5To10)},
		{"Sem atualizacao 10-14 dias", len(d.Staleness.Days10To15)},
		{"Sem atualizacao 15+ dias", len(d.Staleness.Days15Plus)},
		{"Andamento abaixo de 50%", len(d.Progress.Below50)},
		{"Andamento a partir de 50%", len(d.Progress.AtLeast50)},
		{"Prazo em ate 60 dias", len(d.Deadline)},
		{"Prazo vencido", len(d.Overdue)},
	}
	for i, row := range rows {
		set(fmt.Sprintf("A%d", i+1), row.label)
		set(fmt.Sprintf("B%d", i+1), row.value)
	}

	tableRow := len(rows) + 2
	set(fmt.Sprintf("A%d", tableRow), "Status")
	set(fmt.Sprintf("B%d", tableRow), "Quantidade")
	for i, status := range model.AllStatuses() {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), status.Label())
		set(fmt.Sprintf("B%d", row), d.StatusCounts[status])
	}

	_ = file.SetColWidth(sheet, "A", "A", 32)
	_ = file.SetColWidth(sheet, "B", "B", 16)
}

func (g *Generator) writeDistricts(file *excelize.File, sheet string, d model.Dashboard) {
	writeHeader(file, sheet, []string{"Regiao", "Obras"})
	for i, group := range d.ByDistrict {
		row := i + 2
		_ = file.SetCellValue(sheet, fmt.Sprintf("A%d", row), group.District)
		_ = file.SetCellValue(sheet, fmt.Sprintf("B%d", row), group.Count)
	}
	_ = file.SetColWidth(sheet, "A", "A", 32)
}

func (g *Generator) writeDeadlines(file *excelize.File, sheet string, d model.Dashboard) {
	writeHeader(file, sheet, []string{"Obra", "Regiao", "Status", "Andamento, %", "Previsao de termino", "Dias restantes"})
	items := append(append([]model.DeadlineItem{}, d.Deadline...), d.Overdue...)
	for i, item := range items {
		row := i + 2
		values := []interface{}{
			item.Name,
			item.District,
			item.Status.Label(),
			item.Progress,
			item.ExpectedEndDate,
			item.DaysLeft,
		}
		writeRow(file, sheet, row, values)
	}
	_ = file.SetColWidth(sheet, "A", "A", 45)
	_ = file.SetColWidth(sheet, "B", "F", 18)
}

func (g *Generator) writeUpdates(file *excelize.File, sheet string, d model.Dashboard) {
	writeHeader(file, sheet, []string{"Data", "Obra", "Titulo", "Autor"})
	for i, u := range d.RecentUpdates {
		writeRow(file, sheet, i+2, []interface{}{u.Date, u.ProjectName, u.Title, u.Author})
	}
	_ = file.SetColWidth(sheet, "A", "A", 12)
	_ = file.SetColWidth(sheet, "B", "C", 45)
	_ = file.SetColWidth(sheet, "D", "D", 24)
}

func (g *Generator) writeProjectTable(file *excelize.File, sheet string, list []model.Project) {
	writeHeader(file, sheet, []string{
		"ID",
		"Obra",
		"Local",
		"Cidade",
		"Regiao",
		"Status",
		"Andamento, %",
		"Ultima atualizacao",
		"Contrato",
		"Empresa",
		"Orcamento",
		"Inicio",
		"Previsao de termino",
	})
	for i, p := range list {
		writeRow(file, sheet, i+2, []interface{}{
			p.ID,
			p.Name,
			p.Location,
			p.City,
			p.District,
			p.Status.Label(),
			p.Progress,
			p.LastUpdate,
			p.ContractID,
			p.Contractor,
			p.Budget,
			p.StartDate,
			p.ExpectedEndDate,
		})
	}
	_ = file.SetColWidth(sheet, "A", "A", 12)
	_ = file.SetColWidth(sheet, "B", "C", 40)
	_ = file.SetColWidth(sheet, "D", "M", 18)
}

func writeHeader(file *excelize.File, sheet string, headers []string) {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = file.SetCellValue(sheet, cell, header)
	}
}

func writeRow(file *excelize.File, sheet string, row int, values []interface{}) {
	for i, value := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = file.SetCellValue(sheet, cell, value)
	}
}

type districtGroup struct {
	district string
	projects []model.Project
}

func groupByDistrict(list []model.Project) []districtGroup {
	var groups []districtGroup
	index := make(map[string]int)
	for _, p := range list {
		pos, ok := index[p.District]
		if !ok {
			pos = len(groups)
			index[p.District] = pos
			groups = append(groups, districtGroup{district: p.District})
		}
		groups[pos].projects = append(groups[pos].projects, p)
	}
	return groups
}

func buildSheetName(name string, used map[string]struct{}) string {
	base := sanitizeSheetName(name)
	if r := []rune(base); len(r) > maxSheetName {
		base = string(r[:maxSheetName])
	}

	nameCandidate := base
	counter := 2
	for {
		if _, exists := used[nameCandidate]; !exists {
			return nameCandidate
		}
		suffix := fmt.Sprintf("-%d", counter)
		trimmed := []rune(base)
		if len(trimmed)+len(suffix) > maxSheetName {
			trimmed = trimmed[:maxSheetName-len(suffix)]
		}
		nameCandidate = string(trimmed) + suffix
		counter++
	}
}

func sanitizeSheetName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Planilha"
	}

	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = replacer.Replace(value)
	value = strings.TrimSpace(value)
	if value == "" {
		return "Planilha"
	}
	return value
}
