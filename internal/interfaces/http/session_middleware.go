package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/obra-admin/internal/domain"
	"github.com/jhoicas/obra-admin/internal/domain/entity"
	"github.com/jhoicas/obra-admin/internal/infrastructure/api"
	"github.com/jhoicas/obra-admin/pkg/logger"
)

// Locals keys de la sesión en Fiber.
const (
	LocalSession         = "session"
	LocalSessionResolved = "session_resolved"
)

// sessionRestorer lo implementa *auth.SessionService.
type sessionRestorer interface {
	Restore(ctx context.Context, token string) (*entity.Session, error)
}

// SessionMiddleware resuelve la sesión desde el Bearer o la cookie y la deja en
// c.Locals. Sin token, o con uno inválido, la petición sigue sin sesión; decidir
// qué hacer con ella es trabajo del guard.
// El bearer del API externo se adjunta al UserContext para los adaptadores.
func SessionMiddleware(restorer sessionRestorer, cookieName string, log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("session")
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" && cookieName != "" {
			token = c.Cookies(cookieName)
		}
		if token == "" {
			c.Locals(LocalSessionResolved, true)
			return c.Next()
		}

		sess, err := restorer.Restore(c.UserContext(), token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrSessionExpired), errors.Is(err, domain.ErrSessionNotFound),
				errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUnknownRole):
				log.Debug().Err(err).Msg("sesión descartada")
			default:
				log.Error().Err(err).Msg("no se pudo restaurar la sesión")
			}
			c.Locals(LocalSessionResolved, true)
			return c.Next()
		}

		c.Locals(LocalSession, sess)
		c.Locals(LocalSessionResolved, true)
		c.SetUserContext(api.WithToken(c.UserContext(), sess.Token))
		return c.Next()
	}
}

// RequireSession responde 401 si la petición no trae sesión. Para rutas de /app
// que no pertenecen a un módulo (ej. /app/sesion).
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetSession(c) == nil {
			return unauthenticated(c)
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión de la petición o nil.
func GetSession(c *fiber.Ctx) *entity.Session {
	s, _ := c.Locals(LocalSession).(*entity.Session)
	return s
}

// SessionResolved informa si el middleware de sesión ya terminó su trabajo.
func SessionResolved(c *fiber.Ctx) bool {
	v, _ := c.Locals(LocalSessionResolved).(bool)
	return v
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
