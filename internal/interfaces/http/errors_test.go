package http

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/obra-admin/internal/domain"
)

func TestStatusFromError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrValidation, fiber.StatusUnprocessableEntity},
		{fmt.Errorf("x: %w", domain.ErrNegativeStock), fiber.StatusUnprocessableEntity},
		{domain.ErrInvalidInput, fiber.StatusBadRequest},
		{fmt.Errorf("GET /x: %w", domain.ErrNotFound), fiber.StatusNotFound},
		{domain.ErrForbidden, fiber.StatusForbidden},
		{domain.ErrSessionExpired, fiber.StatusUnauthorized},
		{domain.ErrConflict, fiber.StatusConflict},
		{domain.ErrNetwork, fiber.StatusBadGateway},
		{domain.ErrUpstream, fiber.StatusBadGateway},
		{fmt.Errorf("otro"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		status, _ := statusFromError(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc "))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken(""))
}
