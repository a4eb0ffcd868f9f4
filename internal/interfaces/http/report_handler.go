package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/obra-admin/internal/application/reports"
)

// ReportHandler exportación de informes diarios.
type ReportHandler struct {
	pdf *reports.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(pdf *reports.PDFUseCase) *ReportHandler {
	return &ReportHandler{pdf: pdf}
}

// DownloadPDF godoc
// @Summary      Descargar informe diario en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del informe"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /app/reportes/{id}/pdf [get]
func (h *ReportHandler) DownloadPDF(c *fiber.Ctx) error {
	body, filename, err := h.pdf.DownloadDailyReportPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return replyError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(body)
}
