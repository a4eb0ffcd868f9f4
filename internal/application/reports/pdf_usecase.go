// Package reports exporta los informes diarios de obra.
package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/obra-admin/internal/domain"
	"github.com/jhoicas/obra-admin/internal/domain/entity"
	"github.com/jhoicas/obra-admin/internal/domain/repository"
	"github.com/jhoicas/obra-admin/pkg/logger"
)

// PDFUseCase genera el PDF de un informe diario traído del API.
type PDFUseCase struct {
	reports   repository.Resource[entity.DailyReport]
	projects  repository.Resource[entity.Project]
	generator ReportPDFGenerator
	log       *logger.Logger
}

// NewPDFUseCase construye el caso de uso. projects puede ser nil.
func NewPDFUseCase(
	reports repository.Resource[entity.DailyReport],
	projects repository.Resource[entity.Project],
	generator ReportPDFGenerator,
	log *logger.Logger,
) *PDFUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PDFUseCase{reports: reports, projects: projects, generator: generator, log: log.Component("reports.pdf")}
}

// DownloadDailyReportPDF devuelve los bytes del PDF y el nombre de archivo sugerido.
// El nombre del proyecto es opcional: si no se puede leer, el PDF sale con el ID.
func (uc *PDFUseCase) DownloadDailyReportPDF(ctx context.Context, reportID string) (pdfBytes []byte, filename string, err error) {
	if reportID == "" {
		return nil, "", domain.ErrInvalidInput
	}
	report, err := uc.reports.Get(ctx, reportID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener informe: %w", err)
	}

	var project *entity.Project
	if uc.projects != nil && report.ProjectID != "" {
		p, err := uc.projects.Get(ctx, report.ProjectID)
		switch {
		case err == nil:
			project = &p
		case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrNotFound):
		default:
			uc.log.Warn().Err(err).Str("project_id", report.ProjectID).Msg("proyecto del informe no disponible")
		}
	}

	pdfBytes, err = uc.generator.GenerateDailyReportPDF(ctx, &report, project)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar: %w", err)
	}
	date := "sin-fecha"
	if report.Date != nil {
		date = report.Date.Format("2006-01-02")
	}
	return pdfBytes, fmt.Sprintf("informe-%s-%s.pdf", date, reportID), nil
}
