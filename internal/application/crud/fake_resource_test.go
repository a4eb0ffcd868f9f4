package crud_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/obra-admin/internal/domain"
)

// fakeResource recurso en memoria que cuenta llamadas y permite inyectar fallos.
type fakeResource[T interface{ RecordID() string }] struct {
	mu      sync.Mutex
	name    string
	items   []T
	calls   map[string]int
	failOn  map[string]error
	nextID  int
	setID   func(T, string) T
	patchFn func(T, map[string]any) T
}

func newFake[T interface{ RecordID() string }](name string, setID func(T, string) T, items ...T) *fakeResource[T] {
	return &fakeResource[T]{name: name, items: items, calls: map[string]int{}, failOn: map[string]error{}, setID: setID}
}

func (f *fakeResource[T]) hit(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	return f.failOn[op]
}

func (f *fakeResource[T]) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeResource[T]) Name() string { return f.name }

func (f *fakeResource[T]) List(context.Context) ([]T, error) {
	if err := f.hit("list"); err != nil {
		return nil, err
	}
	return append([]T(nil), f.items...), nil
}

func (f *fakeResource[T]) Get(_ context.Context, id string) (T, error) {
	var zero T
	if err := f.hit("get"); err != nil {
		return zero, err
	}
	for _, it := range f.items {
		if it.RecordID() == id {
			return it, nil
		}
	}
	return zero, domain.ErrNotFound
}

func (f *fakeResource[T]) Create(_ context.Context, item T) (T, error) {
	var zero T
	if err := f.hit("create"); err != nil {
		return zero, err
	}
	f.nextID++
	item = f.setID(item, fmt.Sprintf("new-%d", f.nextID))
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeResource[T]) Update(_ context.Context, id string, item T) (T, error) {
	var zero T
	if err := f.hit("update"); err != nil {
		return zero, err
	}
	return f.setID(item, id), nil
}

func (f *fakeResource[T]) Patch(ctx context.Context, id string, fields map[string]any) (T, error) {
	var zero T
	if err := f.hit("patch"); err != nil {
		return zero, err
	}
	for i, it := range f.items {
		if it.RecordID() == id {
			if f.patchFn != nil {
				f.items[i] = f.patchFn(it, fields)
			}
			return f.items[i], nil
		}
	}
	return zero, domain.ErrNotFound
}

func (f *fakeResource[T]) Delete(_ context.Context, id string) error {
	return f.hit("delete")
}
