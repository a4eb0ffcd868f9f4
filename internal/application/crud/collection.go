// Package crud implementa el patrón de página CRUD: una copia local por sesión
// de la colección traída del API externo, con búsqueda y filtros que nunca
// vuelven al API, y mutaciones que reconcilian la copia con la respuesta.
package crud

import (
	"sync"

	"github.com/jhoicas/obra-admin/pkg/textnorm"
)

// Record registro de negocio que puede vivir en una vista.
type Record interface {
	RecordID() string
	SearchText() []string
}

// Attributer registros con atributos para filtros exactos (status, project_id...).
// ok es false si el registro no tiene ese atributo; el filtro se ignora.
type Attributer interface {
	Attribute(name string) (string, bool)
}

// Filter criterio de búsqueda local. Query es subcadena sin tildes ni mayúsculas;
// Attrs exige igualdad exacta (normalizada) en cada atributo no vacío que el
// registro conozca; los demás parámetros (page, orden...) no filtran.
type Filter struct {
	Query string
	Attrs map[string]string
}

// Collection copia ordenada de una colección. Segura para uso concurrente.
type Collection[T Record] struct {
	mu     sync.RWMutex
	items  []T
	loaded bool
}

// Replace sustituye toda la copia (la última carga gana).
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(make([]T, 0, len(items)), items...)
	c.loaded = true
}

// Loaded informa si la vista se cargó al menos una vez.
func (c *Collection[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Upsert reemplaza el registro con el mismo ID o lo agrega al final.
func (c *Collection[T]) Upsert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := item.RecordID()
	for i := range c.items {
		if c.items[i].RecordID() == id {
			c.items[i] = item
			return
		}
	}
	c.items = append(c.items, item)
}

// Remove quita el registro. Devuelve false si no estaba.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].RecordID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Find busca un registro por ID.
func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Snapshot copia del contenido actual.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append(make([]T, 0, len(c.items)), c.items...)
}

// Filter aplica f sobre la copia local conservando el orden.
func (c *Collection[T]) Filter(f Filter) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if matches(it, f) {
			out = append(out, it)
		}
	}
	return out
}

func matches[T Record](it T, f Filter) bool {
	for name, want := range f.Attrs {
		if textnorm.Fold(want) == "" {
			continue
		}
		a, ok := any(it).(Attributer)
		if !ok {
			continue
		}
		got, ok := a.Attribute(name)
		if !ok {
			continue
		}
		if textnorm.Fold(got) != textnorm.Fold(want) {
			return false
		}
	}
	if textnorm.Fold(f.Query) == "" {
		return true
	}
	for _, s := range it.SearchText() {
		if textnorm.Contains(s, f.Query) {
			return true
		}
	}
	return false
}
