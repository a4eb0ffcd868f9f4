package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/obra-admin/internal/domain"
	"github.com/jhoicas/obra-admin/internal/domain/repository"
)

// Nombres de colecciones del API externo.
const (
	ResourceProjects         = "projects"
	ResourceInventory        = "inventory"
	ResourceEmployees        = "employees"
	ResourceFinances         = "finances"
	ResourceTenders          = "tenders"
	ResourceDrawings         = "drawings"
	ResourceDailyReports     = "daily-reports"
	ResourceMaterialRequests = "material-requests"
	ResourceMoneyRequests    = "money-requests"
	ResourceUsers            = "users"
)

// Resource adaptador genérico de una colección REST: /{name} y /{name}/{id}.
type Resource[T any] struct {
	client *Client
	name   string
}

var _ repository.Resource[struct{}] = (*Resource[struct{}])(nil)

// NewResource construye el adaptador para la colección name.
func NewResource[T any](client *Client, name string) *Resource[T] {
	return &Resource[T]{client: client, name: name}
}

func (r *Resource[T]) Name() string { return r.name }

func (r *Resource[T]) collectionPath() string { return "/" + r.name }

func (r *Resource[T]) itemPath(id string) string { return "/" + r.name + "/" + url.PathEscape(id) }

// List acepta un arreglo JSON o un sobre {"items": [...]} / {"data": [...]}.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var raw json.RawMessage
	if err := r.client.do(ctx, r.name, http.MethodGet, r.collectionPath(), nil, &raw); err != nil {
		return nil, err
	}
	items, err := decodeList[T](raw)
	if err != nil {
		return nil, fmt.Errorf("%w: listar %s: %v", domain.ErrUpstream, r.name, err)
	}
	return items, nil
}

func (r *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	err := r.client.do(ctx, r.name, http.MethodGet, r.itemPath(id), nil, &out)
	return out, err
}

func (r *Resource[T]) Create(ctx context.Context, item T) (T, error) {
	var out T
	err := r.client.do(ctx, r.name, http.MethodPost, r.collectionPath(), item, &out)
	return out, err
}

func (r *Resource[T]) Update(ctx context.Context, id string, item T) (T, error) {
	var out T
	err := r.client.do(ctx, r.name, http.MethodPut, r.itemPath(id), item, &out)
	return out, err
}

func (r *Resource[T]) Patch(ctx context.Context, id string, fields map[string]any) (T, error) {
	var out T
	err := r.client.do(ctx, r.name, http.MethodPatch, r.itemPath(id), fields, &out)
	return out, err
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, r.name, http.MethodDelete, r.itemPath(id), nil, nil)
}

type listEnvelope[T any] struct {
	Items []T `json:"items"`
	Data  []T `json:"data"`
}

func decodeList[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}
	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var env listEnvelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	if env.Items != nil {
		return env.Items, nil
	}
	if env.Data != nil {
		return env.Data, nil
	}
	return []T{}, nil
}
