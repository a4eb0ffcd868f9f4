package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrValidation         = errors.New("validación fallida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrNetwork            = errors.New("fallo de red")
	ErrUpstream           = errors.New("error del API externo")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnknownRole        = errors.New("rol desconocido")
	ErrSessionNotFound    = errors.New("sesión no encontrada")
	ErrSessionExpired     = errors.New("sesión expirada")
	ErrNegativeStock      = errors.New("el stock no puede quedar negativo")
)
