package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/obra-admin/internal/application/dashboard"
)

// DashboardHandler maneja el endpoint del dashboard.
type DashboardHandler struct {
	uc *dashboard.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  Solo incluye las secciones de los módulos que el rol puede ver.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /app/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return unauthenticated(c)
	}
	summary, err := h.uc.GetSummary(c.UserContext(), &sess.User, sess.Token)
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(summary)
}
