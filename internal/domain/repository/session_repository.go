package repository

import (
	"context"
	"time"

	"github.com/jhoicas/obra-admin/internal/domain/entity"
)

// SessionRepository define el puerto de persistencia de sesiones (copia que sobrevive reinicios).
// Get devuelve (nil, nil) si la sesión no existe.
type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
