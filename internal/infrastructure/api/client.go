// Package api es el adaptador HTTP hacia el API REST externo de la constructora.
// Usa net/http de la librería estándar; cada petición lleva el bearer del usuario
// tomado del context. No hay reintentos automáticos.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/obra-admin/internal/domain"
)

// Observer recibe la duración de cada llamada al API (lo implementa metrics.Collectors).
type Observer interface {
	ObserveUpstream(resource, method string, status int, elapsed time.Duration)
}

type tokenKey struct{}

// WithToken devuelve un context que adjunta el bearer del API a las peticiones.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom extrae el bearer del context ("" si no hay).
func TokenFrom(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey{}).(string)
	return s
}

// Client cliente JSON del API externo.
type Client struct {
	baseURL    string
	httpClient *http.Client
	observer   Observer
}

// Option configura el Client.
type Option func(*Client)

// WithHTTPClient reemplaza el http.Client (tests, transportes personalizados).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithObserver registra un observador de latencias.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// NewClient construye el cliente. baseURL no debe terminar en "/".
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// apiError cuerpo de error típico del API externo.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do ejecuta la petición, decodifica la respuesta en out (si no es nil) y
// traduce el status HTTP a errores de dominio.
func (c *Client) do(ctx context.Context, resource, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: construir petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := TokenFrom(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(resource, method, 0, start)
		return fmt.Errorf("%w: %s %s: %v", domain.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()
	c.observe(resource, method, resp.StatusCode, start)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, method, path, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: respuesta inválida de %s %s: %v", domain.ErrUpstream, method, path, err)
	}
	return nil
}

func (c *Client) observe(resource, method string, status int, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveUpstream(resource, method, status, time.Since(start))
	}
}

// statusError mapea el código HTTP a la taxonomía de dominio conservando el detalle.
func statusError(status int, method, path string, raw []byte) error {
	var base error
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		base = domain.ErrValidation
	case status == http.StatusUnauthorized:
		base = domain.ErrUnauthorized
	case status == http.StatusForbidden:
		base = domain.ErrForbidden
	case status == http.StatusNotFound:
		base = domain.ErrNotFound
	case status == http.StatusConflict:
		base = domain.ErrConflict
	default:
		base = domain.ErrUpstream
	}
	detail := ""
	var ae apiError
	if json.Unmarshal(raw, &ae) == nil {
		detail = firstNonEmpty(ae.Message, ae.Error, ae.Code)
	}
	if detail == "" {
		return fmt.Errorf("%w: %s %s -> %d", base, method, path, status)
	}
	return fmt.Errorf("%w: %s %s -> %d: %s", base, method, path, status, detail)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
