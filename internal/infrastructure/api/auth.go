package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jhoicas/obra-admin/internal/application/dto"
	"github.com/jhoicas/obra-admin/internal/domain"
)

// Login autentica contra POST /auth/login. Las credenciales rechazadas (400/401/403)
// se devuelven como domain.ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.UpstreamLogin, error) {
	var out dto.UpstreamLogin
	err := c.do(ctx, "auth", http.MethodPost, "/auth/login",
		dto.UpstreamLoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrValidation) {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCredentials, err)
		}
		return nil, err
	}
	if out.BearerToken() == "" {
		return nil, fmt.Errorf("%w: login sin token", domain.ErrUpstream)
	}
	return &out, nil
}
