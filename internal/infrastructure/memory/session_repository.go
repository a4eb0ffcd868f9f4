// Package memory implementa el almacén de sesiones en memoria del proceso
// (desarrollo y tests). No sobrevive reinicios.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/obra-admin/internal/domain/entity"
	"github.com/jhoicas/obra-admin/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo almacén de sesiones en un map protegido por mutex.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

// NewSessionRepository construye el almacén vacío.
func NewSessionRepository() *SessionRepo {
	return &SessionRepo{sessions: make(map[string]entity.Session)}
}

func (r *SessionRepo) Save(_ context.Context, s *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = *s
	return nil
}

func (r *SessionRepo) Get(_ context.Context, id string) (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *SessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}
