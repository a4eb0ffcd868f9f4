package entity

import "time"

// SessionUser identidad del usuario autenticado. Solo la sesión la crea y la borra;
// el resto de componentes la leen.
type SessionUser struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"` // etiqueta tal como la entrega el API, ej. "Director de Proyectos"
	ProjectID *string `json:"project_id,omitempty"`
}

// Session sesión activa: usuario + credencial del API externo.
type Session struct {
	ID        string
	User      SessionUser
	Token     string // bearer del API externo
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired informa si la sesión venció en el instante now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
