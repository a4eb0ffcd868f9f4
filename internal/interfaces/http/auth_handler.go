package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/obra-admin/internal/application/auth"
	"github.com/jhoicas/obra-admin/internal/application/dto"
	"github.com/jhoicas/obra-admin/internal/domain"
)

// CookieConfig cookie que transporta el token de sesión para clientes de navegador.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler maneja login, logout y la consulta de la sesión actual.
type AuthHandler struct {
	sessions *auth.SessionService
	cookie   CookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(sessions *auth.SessionService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{sessions: sessions, cookie: cookie}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Autentica contra el API externo. Los errores se devuelven como error del formulario.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.LoginErrorResponse
// @Failure      401   {object}  dto.LoginErrorResponse
// @Failure      403   {object}  dto.LoginErrorResponse
// @Failure      502   {object}  dto.LoginErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.LoginErrorResponse{FormError: "Solicitud inválida"})
	}
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.LoginErrorResponse{FormError: "Ingrese correo y contraseña"})
	}

	res, err := h.sessions.Login(c.UserContext(), in.Email, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.LoginErrorResponse{FormError: "Correo o contraseña incorrectos"})
		case errors.Is(err, domain.ErrUnknownRole):
			return c.Status(fiber.StatusForbidden).JSON(dto.LoginErrorResponse{FormError: "Su rol no tiene acceso a esta aplicación"})
		default:
			status, _ := statusFromError(err)
			return c.Status(status).JSON(dto.LoginErrorResponse{FormError: dto.MessageFromError(err)})
		}
	}

	if h.cookie.Name != "" {
		c.Cookie(&fiber.Cookie{
			Name:     h.cookie.Name,
			Value:    res.Token,
			Path:     "/",
			Expires:  res.Session.ExpiresAt,
			HTTPOnly: true,
			Secure:   h.cookie.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return c.JSON(dto.LoginResponse{Token: res.Token, SessionResponse: h.sessions.View(res.Session)})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess := GetSession(c); sess != nil {
		if err := h.sessions.Logout(c.UserContext(), sess.ID); err != nil {
			return replyError(c, err)
		}
	}
	if h.cookie.Name != "" {
		c.Cookie(&fiber.Cookie{
			Name:     h.cookie.Name,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			Secure:   h.cookie.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return c.JSON(fiber.Map{"message": "sesión cerrada"})
}

// Session godoc
// @Summary      Sesión actual con la navegación filtrada por rol
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /app/sesion [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return unauthenticated(c)
	}
	return c.JSON(h.sessions.View(sess))
}
