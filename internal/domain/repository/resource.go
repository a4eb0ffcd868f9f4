package repository

import "context"

// Resource define el puerto hacia una colección del API externo. La credencial
// del usuario viaja en ctx; el adaptador la adjunta a cada petición.
type Resource[T any] interface {
	Name() string
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, item T) (T, error)
	Patch(ctx context.Context, id string, fields map[string]any) (T, error)
	Delete(ctx context.Context, id string) error
}
