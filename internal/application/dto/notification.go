package dto

import (
	"errors"

	"github.com/jhoicas/obra-admin/internal/domain"
)

// Niveles de notificación.
const (
	NotifyError   = "error"
	NotifySuccess = "success"
)

// Notification aviso transitorio que el cliente muestra sin bloquear la página.
type Notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// messager errores que ya traen un mensaje apto para el usuario (validación).
type messager interface {
	UserMessage() string
}

// NotificationFromError traduce la taxonomía de errores a un mensaje corto.
func NotificationFromError(err error) *Notification {
	if err == nil {
		return nil
	}
	return &Notification{Level: NotifyError, Message: MessageFromError(err)}
}

// MessageFromError mensaje legible para el usuario final.
func MessageFromError(err error) string {
	var m messager
	switch {
	case errors.As(err, &m):
		return m.UserMessage()
	case errors.Is(err, domain.ErrValidation):
		return "Revise los datos del formulario"
	case errors.Is(err, domain.ErrInvalidInput):
		return "Datos inválidos"
	case errors.Is(err, domain.ErrNetwork):
		return "No fue posible conectar con el servidor. Intente de nuevo"
	case errors.Is(err, domain.ErrForbidden):
		return "No tiene permisos para realizar esta acción"
	case errors.Is(err, domain.ErrNotFound):
		return "El registro no existe o fue eliminado"
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSessionExpired):
		return "Su sesión expiró. Inicie sesión nuevamente"
	case errors.Is(err, domain.ErrConflict):
		return "El registro fue modificado por otro usuario"
	case errors.Is(err, domain.ErrNegativeStock):
		return "El stock no puede quedar negativo"
	default:
		return "Ocurrió un error inesperado"
	}
}

// Success notificación de éxito.
func Success(msg string) *Notification {
	return &Notification{Level: NotifySuccess, Message: msg}
}
