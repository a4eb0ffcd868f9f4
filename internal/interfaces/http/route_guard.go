package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/obra-admin/internal/application/dto"
	"github.com/jhoicas/obra-admin/internal/domain/access"
	"github.com/jhoicas/obra-admin/internal/domain/entity"
	"github.com/jhoicas/obra-admin/pkg/logger"
)

// Rutas de redirección del guard.
const (
	LoginPath    = "/login"
	NotFoundPath = "/no-encontrado"
)

// accessObserver lo implementa *metrics.Collectors.
type accessObserver interface {
	ObserveAccess(module, outcome string)
}

// RouteGuard protege las rutas /app/<módulo>. Debe ir DESPUÉS de SessionMiddleware.
//
// Comportamiento:
//   - Loading         → 503, la sesión aún no se resolvió.
//   - Unauthenticated → 302 a /login.
//   - Denied          → 302 a /no-encontrado.
//   - Allowed         → continúa.
//
// Cada navegación se evalúa una sola vez; no hay reintentos.
func RouteGuard(decider *access.Decider, obs accessObserver, log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("guard")
	return func(c *fiber.Ctx) error {
		var (
			user  *entity.SessionUser
			token string
		)
		if s := GetSession(c); s != nil {
			user, token = &s.User, s.Token
		}
		path := c.Path()
		module := access.ModuleFromPath(path)
		state := decider.Evaluate(SessionResolved(c), user, token, path)
		if obs != nil {
			obs.ObserveAccess(string(module), state.String())
		}

		switch state {
		case access.GuardAllowed:
			return c.Next()
		case access.GuardUnauthenticated:
			return c.Redirect(LoginPath, fiber.StatusFound)
		case access.GuardDenied:
			log.Warn().
				Str("role", user.Role).
				Str("module", string(module)).
				Str("path", path).
				Msg("acceso denegado")
			return c.Redirect(NotFoundPath, fiber.StatusFound)
		default:
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SESSION_LOADING",
				Message: "la sesión aún se está cargando, intente de nuevo",
			})
		}
	}
}
