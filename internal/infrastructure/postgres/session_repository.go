package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/obra-admin/internal/domain/entity"
	"github.com/jhoicas/obra-admin/internal/domain/repository"
	"github.com/jhoicas/obra-admin/internal/infrastructure/secure"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository sobre PostgreSQL.
// El bearer del API externo se guarda cifrado.
type SessionRepo struct {
	pool   *pgxpool.Pool
	sealer *secure.Sealer
}

// NewSessionRepository construye el adaptador de persistencia para sesiones.
func NewSessionRepository(pool *pgxpool.Pool, sealer *secure.Sealer) *SessionRepo {
	return &SessionRepo{pool: pool, sealer: sealer}
}

// Save inserta o reemplaza la sesión.
func (r *SessionRepo) Save(ctx context.Context, s *entity.Session) error {
	sealed, err := r.sealer.Seal([]byte(s.Token))
	if err != nil {
		return fmt.Errorf("seal session token: %w", err)
	}
	query := `
		INSERT INTO sessions (id, user_id, user_name, user_email, role, project_id, token_sealed, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id, user_name = EXCLUDED.user_name, user_email = EXCLUDED.user_email,
			role = EXCLUDED.role, project_id = EXCLUDED.project_id, token_sealed = EXCLUDED.token_sealed,
			expires_at = EXCLUDED.expires_at`
	_, err = r.pool.Exec(ctx, query,
		s.ID, s.User.ID, s.User.Name, s.User.Email, s.User.Role, s.User.ProjectID, sealed,
		s.CreatedAt, s.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// Get obtiene una sesión por ID. (nil, nil) si no existe.
func (r *SessionRepo) Get(ctx context.Context, id string) (*entity.Session, error) {
	query := `
		SELECT id, user_id, user_name, user_email, role, project_id, token_sealed, created_at, expires_at
		FROM sessions WHERE id = $1`
	var (
		s      entity.Session
		sealed []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.User.ID, &s.User.Name, &s.User.Email, &s.User.Role, &s.User.ProjectID, &sealed,
		&s.CreatedAt, &s.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	token, err := r.sealer.Open(sealed)
	if err != nil {
		return nil, fmt.Errorf("open session token: %w", err)
	}
	s.Token = string(token)
	return &s, nil
}

// Delete elimina la sesión. No falla si no existe.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired purga las sesiones vencidas en now.
func (r *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
