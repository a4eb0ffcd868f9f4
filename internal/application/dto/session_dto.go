package dto

import "time"

// LoginRequest entrada del formulario de login.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginErrorResponse error a nivel de formulario (no notificación global).
type LoginErrorResponse struct {
	FormError string `json:"form_error"`
}

// SessionUserResponse usuario de la sesión tal como lo ve el cliente.
type SessionUserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	RoleKey   string  `json:"role_key"`
	ProjectID *string `json:"project_id,omitempty"`
}

// NavItemResponse entrada de navegación visible.
type NavItemResponse struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Icon   string `json:"icon"`
	Module string `json:"module"`
}

// SessionResponse sesión activa con la navegación filtrada por rol.
type SessionResponse struct {
	User       SessionUserResponse `json:"user"`
	Navigation []NavItemResponse   `json:"navigation"`
	Home       string              `json:"home"`
	ExpiresAt  time.Time           `json:"expires_at"`
}

// LoginResponse salida del login: token de sesión de este servicio + sesión.
type LoginResponse struct {
	Token string `json:"token"`
	SessionResponse
}
