package dto

// UpstreamLoginRequest cuerpo que espera el API externo en /auth/login.
type UpstreamLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpstreamUser usuario tal como lo devuelve el API externo.
type UpstreamUser struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	ProjectID *string `json:"project_id,omitempty"`
}

// UpstreamLogin respuesta del login del API externo. Algunos despliegues
// usan access_token en vez de token.
type UpstreamLogin struct {
	Token       string       `json:"token"`
	AccessToken string       `json:"access_token,omitempty"`
	User        UpstreamUser `json:"user"`
}

// BearerToken devuelve la credencial presente.
func (l UpstreamLogin) BearerToken() string {
	if l.Token != "" {
		return l.Token
	}
	return l.AccessToken
}
