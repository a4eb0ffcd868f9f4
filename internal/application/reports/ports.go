package reports

import (
	"context"

	"github.com/jhoicas/obra-admin/internal/domain/entity"
)

// ReportPDFGenerator genera la exportación PDF de un informe diario.
type ReportPDFGenerator interface {
	GenerateDailyReportPDF(ctx context.Context, report *entity.DailyReport, project *entity.Project) ([]byte, error)
}
