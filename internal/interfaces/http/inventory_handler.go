package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/obra-admin/internal/application/dto"
	"github.com/jhoicas/obra-admin/internal/application/inventory"
)

// InventoryHandler ajustes de existencias (además del CRUD genérico de inventario).
type InventoryHandler struct {
	uc *inventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Adjust godoc
// @Summary      Ajustar existencia de un ítem
// @Description  Actualización optimista de la cantidad. Si el API rechaza el cambio, la vista vuelve al valor anterior.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del ítem"
// @Param        body  body  dto.StockAdjustRequest  true  "delta con signo y motivo"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      422   {object}  map[string]interface{}
// @Failure      502   {object}  map[string]interface{}
// @Router       /app/inventario/{id}/ajuste [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return unauthenticated(c)
	}
	var in dto.StockAdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	pv, err := h.uc.Adjust(c.UserContext(), sess.ID, sess.User.ID, c.Params("id"), in)
	return replyPage(c, pv, err, fiber.StatusOK)
}

// History godoc
// @Summary      Historial local de ajustes del ítem
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del ítem"
// @Param        limit  query  int     false  "máximo de registros (por defecto 50)"
// @Success      200  {array}   entity.StockAdjustment
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /app/inventario/{id}/ajustes [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	list, err := h.uc.History(c.UserContext(), c.Params("id"), c.QueryInt("limit", 50))
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(list)
}
