package crud

import "sync"

// ViewStore vistas por sesión y por recurso. Se descartan al cerrar sesión.
type ViewStore struct {
	mu    sync.Mutex
	views map[string]map[string]any
}

// NewViewStore construye el almacén vacío.
func NewViewStore() *ViewStore {
	return &ViewStore{views: make(map[string]map[string]any)}
}

// View devuelve (creándola si falta) la vista de resource para la sesión.
func View[T Record](s *ViewStore, sessionID, resource string) *Collection[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	bySession, ok := s.views[sessionID]
	if !ok {
		bySession = make(map[string]any)
		s.views[sessionID] = bySession
	}
	if c, ok := bySession[resource].(*Collection[T]); ok {
		return c
	}
	c := &Collection[T]{}
	bySession[resource] = c
	return c
}

// Drop descarta todas las vistas de la sesión.
func (s *ViewStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, sessionID)
}

// Sessions cantidad de sesiones con vistas vivas.
func (s *ViewStore) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}
