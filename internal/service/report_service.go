package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nurpe/obras-portal/internal/geomap"
	"github.com/nurpe/obras-portal/internal/metrics"
	"github.com/nurpe/obras-portal/internal/model"
)

type ExcelGenerator interface {
	Dashboard(d model.Dashboard) ([]byte, error)
	Projects(list []model.Project) ([]byte, error)
}

type PDFGenerator interface {
	ProjectSheet(project model.Project, cal model.Calendar) ([]byte, error)
	Map(state geomap.State, title string) ([]byte, error)
}

// ReportService turns portal views into downloadable files.
type ReportService struct {
	portal *PortalService
	excel  ExcelGenerator
	pdf    PDFGenerator
}

type ExportResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

func NewReportService(portal *PortalService, excel ExcelGenerator, pdf PDFGenerator) *ReportService {
	return &ReportService{portal: portal, excel: excel, pdf: pdf}
}

func (s *ReportService) DashboardXLSX(ctx context.Context) (*ExportResult, error) {
	dashboard, err := s.portal.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Dashboard(dashboard)
	if err != nil {
		return nil, err
	}
	metrics.IncrementExport("dashboard_xlsx")
	return &ExportResult{
		FileName:    buildFileName("painel", "", dashboard.Date, "xlsx"),
		ContentType: contentTypeXLSX,
		Content:     content,
	}, nil
}

func (s *ReportService) ProjectsXLSX(ctx context.Context, filter ProjectFilter) (*ExportResult, error) {
	list, err := s.portal.Projects(ctx, filter)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Projects(list)
	if err != nil {
		return nil, err
	}
	metrics.IncrementExport("projects_xlsx")
	return &ExportResult{
		FileName:    buildFileName("obras", s.scopeName(ctx, filter.CityID), model.FormatDate(s.portal.Now()), "xlsx"),
		ContentType: contentTypeXLSX,
		Content:     content,
	}, nil
}

func (s *ReportService) ProjectSheetPDF(ctx context.Context, id string) (*ExportResult, error) {
	project, err := s.portal.Project(ctx, id)
	if err != nil {
		return nil, err
	}
	cal, err := BuildCalendar(*project, "", s.portal.Now())
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.ProjectSheet(*project, cal)
	if err != nil {
		return nil, err
	}
	metrics.IncrementExport("project_pdf")
	return &ExportResult{
		FileName:    buildFileName("obra", project.ID, project.LastUpdate, "pdf"),
		ContentType: contentTypePDF,
		Content:     content,
	}, nil
}

func (s *ReportService) MapPDF(ctx context.Context, q MapQuery) (*ExportResult, error) {
	state, _, err := s.portal.MapState(ctx, q)
	if err != nil {
		return nil, err
	}
	scope := s.scopeName(ctx, q.Filter.CityID)
	title := "Obras publicas"
	if scope != "" {
		title += " - " + scope
	}
	content, err := s.pdf.Map(state, title)
	if err != nil {
		return nil, err
	}
	metrics.IncrementExport("map_pdf")
	return &ExportResult{
		FileName:    buildFileName("mapa", scope, model.FormatDate(s.portal.Now()), "pdf"),
		ContentType: contentTypePDF,
		Content:     content,
	}, nil
}

// scopeName is the selected city's name, or "" for the whole portal.
func (s *ReportService) scopeName(ctx context.Context, cityID string) string {
	regions, err := s.portal.Regions(ctx)
	if err != nil {
		return ""
	}
	if city, _, ok := ResolveCity(regions, cityID); ok {
		return city.Name
	}
	return ""
}

func buildFileName(kind, scope, date, ext string) string {
	parts := []string{kind}
	if target := sanitizeFileName(scope); target != "" {
		parts = append(parts, strings.ToLower(target))
	}
	if date = strings.ReplaceAll(date, "-", ""); date != "" {
		parts = append(parts, date)
	}
	return fmt.Sprintf("%s.%s", strings.Join(parts, "-"), ext)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
