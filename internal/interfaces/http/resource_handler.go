package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/obra-admin/internal/application/crud"
)

// ResourceHandler expone una página CRUD. Todas las rutas requieren sesión (las
// monta el router dentro del grupo protegido por RouteGuard).
type ResourceHandler[T crud.Record] struct {
	page *crud.Page[T]
}

// NewResourceHandler construye el handler de la página.
func NewResourceHandler[T crud.Record](page *crud.Page[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{page: page}
}

// Mount registra las rutas de la página en r. /buscar va antes que /:id.
func (h *ResourceHandler[T]) Mount(r fiber.Router) {
	r.Get("/", h.Load)
	r.Get("/buscar", h.Search)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Patch("/:id", h.Patch)
	r.Delete("/:id", h.Delete)
}

// Load godoc
// @Summary      Montar página (carga la colección completa)
// @Tags         paginas
// @Security     Bearer
// @Produce      json
// @Param        module  path  string  true  "módulo (proyectos, inventario, finanzas, ...)"
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]interface{}
// @Router       /app/{module} [get]
func (h *ResourceHandler[T]) Load(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return unauthenticated(c)
	}
	pv, err := h.page.Load(c.UserContext(), sess.ID)
	return replyPage(c, pv, err, fiber.StatusOK)
}

// Search godoc
// @Summary      Buscar en la vista local (no consulta el API si ya está cargada)
// @Tags         paginas
// @Security     Bearer
// @Produce      json
// @Param        module  path   string  true   "módulo"
// @Param        q       query  string  false  "texto libre, sin distinguir tildes ni mayúsculas"
// @Success      200  {object}  map[string]interface{}
// @Router       /app/{module}/buscar [get]
func (h *ResourceHandler[T]) Search(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return unauthenticated(c)
	}
	attrs := c.Queries()
	f := crud.Filter{Query: attrs["q"], Attrs: make(map[string]string, len(attrs))}
	for k, v := range attrs {
		if k != "q" {
			f.Attrs[k] = v
		}
	}
	pv, err := h.page.Search(c.UserContext(), sess.ID, f)
	return replyPage(c, pv, err, fiber.StatusOK)
}

// Get godoc
// @Summary      Obtener un registro
// @Tags         paginas
// @Security     Bearer
// @Produce      json
// @Param        module  path  string  true  "módulo"
// @Param        id      path  string  true  "ID del registro"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /app/{module}/{id} [get]
func (h *ResourceHandler[T]) Get(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return unauthenticated(c)
	}
	pv, err := h.page.Get(c.UserContext(), sess.ID, c.Params("id"))
	return replyPage(c, pv, err, fiber.StatusOK)
}

// Create godoc
// @Summary      Crear registro (se valida antes de llamar al API)
// @Tags         paginas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        module  path  string  true  "módulo"
// @Success      201  {object}  map[string]interface{}
// @Failure      422  {object}  map[string]interface{}
// @Router       /app/{module} [post]
func (h *ResourceHandler[T]) Create(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return unauthenticated(c)
	}
	var in T
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	pv, err := h.page.Create(c.UserContext(), sess.ID, in)
	return replyPage(c, pv, err, fiber.StatusCreated)
}

// Update godoc
// @Summary      Reemplazar registro
// @Tags         paginas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        module  path  string  true  "módulo"
// @Param        id      path  string  true  "ID del registro"
// @Success      200  {object}  map[string]interface{}
// @Failure      422  {object}  map[string]interface{}
// @Router       /app/{module}/{id} [put]
func (h *ResourceHandler[T]) Update(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return unauthenticated(c)
	}
	var in T
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	pv, err := h.page.Update(c.UserContext(), sess.ID, c.Params("id"), in)
	return replyPage(c, pv, err, fiber.StatusOK)
}

// Patch godoc
// @Summary      Actualizar campos de un registro
// @Tags         paginas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        module  path  string  true  "módulo"
// @Param        id      path  string  true  "ID del registro"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /app/{module}/{id} [patch]
func (h *ResourceHandler[T]) Patch(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return unauthenticated(c)
	}
	fields := map[string]any{}
	if err := c.BodyParser(&fields); err != nil {
		return badBody(c)
	}
	pv, err := h.page.Patch(c.UserContext(), sess.ID, c.Params("id"), fields)
	return replyPage(c, pv, err, fiber.StatusOK)
}

// Delete godoc
// @Summary      Eliminar registro (si falla, el registro sigue en la vista)
// @Tags         paginas
// @Security     Bearer
// @Produce      json
// @Param        module  path  string  true  "módulo"
// @Param        id      path  string  true  "ID del registro"
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]interface{}
// @Router       /app/{module}/{id} [delete]
func (h *ResourceHandler[T]) Delete(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return unauthenticated(c)
	}
	pv, err := h.page.Delete(c.UserContext(), sess.ID, c.Params("id"))
	return replyPage(c, pv, err, fiber.StatusOK)
}
